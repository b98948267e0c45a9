package roster

// Worker is a registered site worker. Workers are seeded once at startup and
// read-only afterwards.
type Worker struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	Occupation string `json:"occupation"`
	AvatarURL  string `json:"avatarUrl"`
}

// Site is a construction site. QRCodeValue is the token encoded in the QR
// code posted at the gate; scanned payloads are matched against it.
type Site struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	QRCodeValue string `json:"qrCodeValue"`
}
