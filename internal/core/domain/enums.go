// internal/core/domain/enums.go
package domain

// ModuleName identifies one pseudo-scan category.
type ModuleName string

const (
	// ModuleOSINT open-source intelligence collection (employees, emails, leaks)
	ModuleOSINT ModuleName = "osint"

	// ModuleNetwork network enumeration (subdomains, ports, DNS)
	ModuleNetwork ModuleName = "network"

	// ModuleWebApp web application analysis (technologies, headers, endpoints)
	ModuleWebApp ModuleName = "webapp"

	// ModuleSocial social engineering intelligence (profiles, handles)
	ModuleSocial ModuleName = "social"

	// ModuleInfra infrastructure profiling (netblocks, certs, providers)
	ModuleInfra ModuleName = "infra"
)

// AllModules lists every module in canonical order.
func AllModules() []ModuleName {
	return []ModuleName{ModuleOSINT, ModuleNetwork, ModuleWebApp, ModuleSocial, ModuleInfra}
}

// IsValid reports whether the module name is known.
func (m ModuleName) IsValid() bool {
	switch m {
	case ModuleOSINT, ModuleNetwork, ModuleWebApp, ModuleSocial, ModuleInfra:
		return true
	default:
		return false
	}
}

// String returns the string form of the module name.
func (m ModuleName) String() string {
	return string(m)
}

// Status describes a lifecycle state of a module or of the run itself.
// Per module the machine is PENDING -> RUNNING -> {COMPLETED | FAILED},
// terminal either way. The run-level timeline additionally uses STARTED.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusStarted   Status = "STARTED"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// IsValid reports whether the status is known.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusStarted, StatusRunning, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is terminal for a module.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// String returns the string form of the status.
func (s Status) String() string {
	return string(s)
}

// Tier defines the search depth of a run. Each tier is a strict superset of
// the previous one in terms of generated queries.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierDeep    Tier = "deep"
	TierStealth Tier = "stealth"
)

// IsValid reports whether the tier is known.
func (t Tier) IsValid() bool {
	switch t {
	case TierBasic, TierDeep, TierStealth:
		return true
	default:
		return false
	}
}

// Rank returns the ordinal position of the tier (basic=0, deep=1, stealth=2).
func (t Tier) Rank() int {
	switch t {
	case TierDeep:
		return 1
	case TierStealth:
		return 2
	default:
		return 0
	}
}

// Includes reports whether this tier covers everything the other tier covers.
func (t Tier) Includes(other Tier) bool {
	return t.Rank() >= other.Rank()
}

// String returns the string form of the tier.
func (t Tier) String() string {
	return string(t)
}

// RecordType classifies a synthesized intelligence record.
type RecordType string

const (
	RecordTypeEmployee    RecordType = "employee"
	RecordTypeEmail       RecordType = "email"
	RecordTypeDocument    RecordType = "document"
	RecordTypeBreach      RecordType = "breach"
	RecordTypeSubdomain   RecordType = "subdomain"
	RecordTypePort        RecordType = "port"
	RecordTypeDNS         RecordType = "dns"
	RecordTypeTechnology  RecordType = "technology"
	RecordTypeHeader      RecordType = "header"
	RecordTypeEndpoint    RecordType = "endpoint"
	RecordTypeProfile     RecordType = "profile"
	RecordTypeNetblock    RecordType = "netblock"
	RecordTypeCertificate RecordType = "certificate"
	RecordTypeProvider    RecordType = "provider"
)

// IsValid reports whether the record type is known.
func (t RecordType) IsValid() bool {
	switch t {
	case RecordTypeEmployee, RecordTypeEmail, RecordTypeDocument, RecordTypeBreach,
		RecordTypeSubdomain, RecordTypePort, RecordTypeDNS, RecordTypeTechnology,
		RecordTypeHeader, RecordTypeEndpoint, RecordTypeProfile, RecordTypeNetblock,
		RecordTypeCertificate, RecordTypeProvider:
		return true
	default:
		return false
	}
}

// String returns the string form of the record type.
func (t RecordType) String() string {
	return string(t)
}
