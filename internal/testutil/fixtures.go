// internal/testutil/fixtures.go
package testutil

// Fixture data for tests (primitive values only, no domain dependencies)

// FixtureDomains contains valid test domains.
var FixtureDomains = []string{
	"example.com",
	"test.example.com",
	"subdomain.example.com",
	"acme-corp.io",
}

// FixtureInvalidDomains contains invalid domains.
var FixtureInvalidDomains = []string{
	"",
	"not a domain",
	"192.168.1.1",
	"2001:db8::1",
	"-invalid.com",
	".example.com",
	"example..com",
}

// FixtureCompanies contains test company names.
var FixtureCompanies = []string{
	"Example Corp",
	"ACME Inc",
	"Test Industries",
}

// FixtureEmails contains valid test emails.
var FixtureEmails = []string{
	"admin@example.com",
	"contact@example.com",
	"j.doe@acme-corp.io",
}
