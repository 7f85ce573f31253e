// internal/modules/infra/fixtures.go
package infra

type provider struct {
	name string
	kind string
	asn  string
}

var providers = []provider{
	{"Amazon Web Services", "cloud", "AS16509"},
	{"Google Cloud", "cloud", "AS396982"},
	{"Cloudflare", "cdn", "AS13335"},
	{"Microsoft Azure", "cloud", "AS8075"},
	{"DigitalOcean", "cloud", "AS14061"},
	{"Fastly", "cdn", "AS54113"},
	{"OVH", "hosting", "AS16276"},
	{"Hetzner", "hosting", "AS24940"},
}

var certIssuers = []string{
	"Let's Encrypt", "DigiCert Inc", "Sectigo Limited",
	"GlobalSign", "Amazon", "Google Trust Services",
}

var netblockSizes = []string{"/24", "/25", "/26", "/27", "/28"}

var certSANPrefixes = []string{"www", "api", "mail", "app", "cdn", "*"}
