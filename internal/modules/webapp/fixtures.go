// internal/modules/webapp/fixtures.go
package webapp

type technology struct {
	name     string
	version  string
	category string
}

var technologies = []technology{
	{"nginx", "1.24.0", "web-server"},
	{"Apache", "2.4.57", "web-server"},
	{"WordPress", "6.4.2", "cms"},
	{"Drupal", "10.1", "cms"},
	{"React", "18.2", "frontend"},
	{"jQuery", "3.6.0", "frontend"},
	{"PHP", "8.2.12", "language"},
	{"Express", "4.18", "framework"},
	{"Cloudflare", "-", "cdn"},
	{"Bootstrap", "5.3", "frontend"},
}

type header struct {
	name    string
	value   string
	finding string
}

var responseHeaders = []header{
	{"Server", "nginx/1.24.0", "version disclosure"},
	{"X-Powered-By", "PHP/8.2.12", "version disclosure"},
	{"X-Frame-Options", "missing", "clickjacking exposure"},
	{"Content-Security-Policy", "missing", "no CSP"},
	{"Strict-Transport-Security", "max-age=31536000", "ok"},
	{"X-Content-Type-Options", "missing", "MIME sniffing exposure"},
	{"Set-Cookie", "session=...; HttpOnly missing", "cookie flags"},
}

var interestingPaths = []string{
	"/admin", "/login", "/wp-admin", "/.git/config", "/backup.zip",
	"/api/v1/users", "/phpinfo.php", "/.env", "/robots.txt", "/debug",
}

var statusCodes = []int{200, 301, 302, 401, 403, 500}
