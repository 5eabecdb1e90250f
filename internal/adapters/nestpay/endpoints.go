package nestpay

// Bank identifies a NestPay deployment. All banks speak the same CC5
// protocol; only the endpoints differ.
type Bank string

const (
	BankIsbank      Bank = "isbank"
	BankAkbank      Bank = "akbank"
	BankDenizbank   Bank = "denizbank"
	BankHalkbank    Bank = "halkbank"
	BankZiraatbank  Bank = "ziraatbank"
	BankTEB         Bank = "teb"
	BankFinansbank  Bank = "finansbank"
	BankAnadolubank Bank = "anadolubank"
)

// Environment selects the bank's test or production deployment
type Environment string

const (
	EnvironmentTest Environment = "TEST"
	EnvironmentProd Environment = "PROD"
)

// Endpoints is the pair of URLs a payment flow needs: the XML API for
// server-to-server calls and the 3-D Secure gate for cardholder redirects
type Endpoints struct {
	API    string
	Gate3D string
}

const (
	sharedTestAPI    = "https://entegrasyon.asseco-see.com.tr/fim/api"
	sharedTestGate3D = "https://entegrasyon.asseco-see.com.tr/fim/est3Dgate"
)

// EndpointRegistry resolves (bank, environment) to the endpoint pair. It is
// a pure lookup injected into the client so tests never touch real URLs.
type EndpointRegistry struct {
	table map[Bank]map[Environment]Endpoints
}

// DefaultRegistry returns the registry of known bank deployments. Most banks
// share Asseco's integration environment for testing.
func DefaultRegistry() *EndpointRegistry {
	return &EndpointRegistry{table: map[Bank]map[Environment]Endpoints{
		BankIsbank: {
			EnvironmentTest: {API: sharedTestAPI, Gate3D: sharedTestGate3D},
			EnvironmentProd: {API: "https://spos.isbank.com.tr/fim/api", Gate3D: "https://spos.isbank.com.tr/fim/est3Dgate"},
		},
		BankAkbank: {
			EnvironmentTest: {API: sharedTestAPI, Gate3D: sharedTestGate3D},
			EnvironmentProd: {API: "https://www.sanalakpos.com/fim/api", Gate3D: "https://www.sanalakpos.com/fim/est3Dgate"},
		},
		BankDenizbank: {
			EnvironmentTest: {API: "https://test.denizbank.com.tr/fim/api", Gate3D: "https://test.denizbank.com.tr/fim/est3Dgate"},
			EnvironmentProd: {API: "https://sanalpos.denizbank.com.tr/fim/api", Gate3D: "https://sanalpos.denizbank.com.tr/fim/est3Dgate"},
		},
		BankHalkbank: {
			EnvironmentTest: {API: sharedTestAPI, Gate3D: sharedTestGate3D},
			EnvironmentProd: {API: "https://sanalpos.halkbank.com.tr/fim/api", Gate3D: "https://sanalpos.halkbank.com.tr/fim/est3Dgate"},
		},
		BankZiraatbank: {
			EnvironmentTest: {API: sharedTestAPI, Gate3D: sharedTestGate3D},
			EnvironmentProd: {API: "https://sanalpos.ziraatbank.com.tr/fim/api", Gate3D: "https://sanalpos.ziraatbank.com.tr/fim/est3Dgate"},
		},
		BankTEB: {
			EnvironmentTest: {API: sharedTestAPI, Gate3D: sharedTestGate3D},
			EnvironmentProd: {API: "https://sanalpos.teb.com.tr/fim/api", Gate3D: "https://sanalpos.teb.com.tr/fim/est3Dgate"},
		},
		BankFinansbank: {
			EnvironmentTest: {API: sharedTestAPI, Gate3D: sharedTestGate3D},
			EnvironmentProd: {API: "https://sanalpos.qnbfinansbank.com/fim/api", Gate3D: "https://sanalpos.qnbfinansbank.com/fim/est3Dgate"},
		},
		BankAnadolubank: {
			EnvironmentTest: {API: sharedTestAPI, Gate3D: sharedTestGate3D},
			EnvironmentProd: {API: "https://sanalpos.anadolubank.com.tr/fim/api", Gate3D: "https://sanalpos.anadolubank.com.tr/fim/est3Dgate"},
		},
	}}
}

// Resolve returns the endpoint pair for the bank and environment. An
// unrecognized bank falls back to isbank's deployment for the requested
// environment; the registry owns that policy, not the client.
func (r *EndpointRegistry) Resolve(bank Bank, env Environment) Endpoints {
	if env != EnvironmentProd {
		env = EnvironmentTest
	}
	if envs, ok := r.table[bank]; ok {
		return envs[env]
	}
	return r.table[BankIsbank][env]
}
