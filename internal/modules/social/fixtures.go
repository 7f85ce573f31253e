// internal/modules/social/fixtures.go
package social

type platform struct {
	name    string
	baseURL string
}

var platforms = []platform{
	{"linkedin", "https://www.linkedin.com/company/"},
	{"twitter", "https://twitter.com/"},
	{"github", "https://github.com/"},
	{"facebook", "https://www.facebook.com/"},
	{"instagram", "https://www.instagram.com/"},
	{"youtube", "https://www.youtube.com/@"},
	{"reddit", "https://www.reddit.com/user/"},
}

var handleSuffixes = []string{
	"", "_official", "hq", "_corp", "team", "_dev", "inc",
}

var bioSnippets = []string{
	"Official account",
	"Building the future",
	"We are hiring!",
	"Customer support: support@",
	"Opinions are our own",
	"Since 2009",
}

var activityLevels = []string{"high", "medium", "low", "dormant"}
