// internal/modules/network/fixtures.go
package network

var subdomainPrefixes = []string{
	"www", "mail", "vpn", "dev", "staging", "api", "admin", "portal",
	"git", "jenkins", "grafana", "intranet", "backup", "test", "docs",
}

type service struct {
	port   int
	name   string
	banner string
}

var commonServices = []service{
	{21, "ftp", "vsFTPd 3.0.3"},
	{22, "ssh", "OpenSSH 8.9p1"},
	{25, "smtp", "Postfix ESMTP"},
	{53, "dns", "BIND 9.18"},
	{80, "http", "nginx/1.24.0"},
	{110, "pop3", "Dovecot"},
	{143, "imap", "Dovecot"},
	{443, "https", "nginx/1.24.0"},
	{3306, "mysql", "MySQL 8.0.35"},
	{3389, "rdp", "Microsoft Terminal Services"},
	{5432, "postgresql", "PostgreSQL 15.4"},
	{8080, "http-proxy", "Apache Tomcat 9.0"},
}

var dnsRecordTypes = []string{"A", "AAAA", "MX", "TXT", "NS", "CNAME"}
