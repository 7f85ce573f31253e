// internal/modules/osint/fixtures.go
package osint

// Fixture tables feeding the synthesizer. Values are presentation detail;
// only their variety matters to the generator.

var firstNames = []string{
	"Alice", "Viktor", "Mei", "Jonas", "Priya", "Carlos", "Ingrid", "Tomás",
	"Leila", "Dmitri", "Hana", "Marcus", "Sofia", "Kwame", "Elena", "Ravi",
}

var lastNames = []string{
	"Hartmann", "Okafor", "Lindqvist", "Moreau", "Tanaka", "Petrov",
	"Alvarez", "Novak", "Singh", "Fischer", "Costa", "Johansson",
}

var jobRoles = []string{
	"Software Engineer", "DevOps Engineer", "IT Administrator",
	"Security Analyst", "Product Manager", "HR Coordinator",
	"Finance Controller", "Support Specialist", "CTO", "Sales Director",
}

var documentTitles = []string{
	"Q3_financial_report.pdf", "employee_handbook.pdf", "org_chart.xlsx",
	"vendor_contracts.pdf", "network_topology.pdf", "onboarding_guide.pdf",
	"disaster_recovery_plan.pdf", "salary_bands.xlsx",
}

var breachCorpora = []string{
	"Collection#1", "LinkedIn 2021", "Adobe 2013", "Dropbox 2012",
	"Canva 2019", "MyFitnessPal 2018", "LastPass 2022",
}
