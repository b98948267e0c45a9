package roster

// Provider exposes the seeded worker and site rosters.
type Provider interface {
	// Workers returns all registered workers in seed order.
	Workers() []Worker

	// Sites returns all configured sites in seed order.
	Sites() []Site

	WorkerByID(id string) (Worker, bool)
	SiteByID(id string) (Site, bool)

	// SiteByQRCode resolves a scanned QR payload to a site.
	SiteByQRCode(value string) (Site, bool)
}

// Companies returns the distinct company names of workers, preserving first
// occurrence order.
func Companies(workers []Worker) []string {
	seen := make(map[string]bool, len(workers))
	var companies []string
	for _, w := range workers {
		if !seen[w.Company] {
			seen[w.Company] = true
			companies = append(companies, w.Company)
		}
	}
	return companies
}
