package site

import (
	"context"
	"log/slog"

	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
	"github.com/genba-cloud/genba-attendance/internal/domain/session"
	qrcode "github.com/skip2/go-qrcode"
)

// ScanResult reports how a scanned QR payload was resolved.
type ScanResult struct {
	Outcome  string       `json:"outcome"` // "ok" or "ignored"
	Reason   string       `json:"reason,omitempty"`
	Site     *roster.Site `json:"site,omitempty"`
	Fallback bool         `json:"fallback,omitempty"`
}

const ReasonUnrecognizedCode = "unrecognized_code"

// Service resolves scanned QR payloads and renders printable site QR codes.
type Service interface {
	// ResolveScan matches a scanned payload against the site rosters'
	// qrCodeValue and, on a match, records the site as scanned in the
	// session.
	ResolveScan(ctx context.Context, payload string) (ScanResult, error)

	// QRCodePNG renders the PNG QR code posted at the site gate.
	QRCodePNG(ctx context.Context, siteID string) ([]byte, error)
}

type SiteServiceImpl struct {
	roster  roster.Provider
	session session.Store

	// fallbackFirstSite resolves unknown payloads to the first site, demo
	// behavior kept behind a config flag.
	fallbackFirstSite bool
}

func NewSiteService(rosterProvider roster.Provider, sessionStore session.Store, fallbackFirstSite bool) Service {
	return &SiteServiceImpl{
		roster:            rosterProvider,
		session:           sessionStore,
		fallbackFirstSite: fallbackFirstSite,
	}
}

// ResolveScan implements Service.
func (s *SiteServiceImpl) ResolveScan(ctx context.Context, payload string) (ScanResult, error) {
	matched, ok := s.roster.SiteByQRCode(payload)
	fallback := false
	if !ok {
		if !s.fallbackFirstSite {
			return ScanResult{Outcome: "ignored", Reason: ReasonUnrecognizedCode}, nil
		}
		sites := s.roster.Sites()
		if len(sites) == 0 {
			return ScanResult{Outcome: "ignored", Reason: ReasonUnrecognizedCode}, nil
		}
		matched = sites[0]
		fallback = true
		slog.Warn("unrecognized QR payload resolved to first site", "payload", payload, "site", matched.ID)
	}

	s.session.SetScannedSite(&matched)
	return ScanResult{Outcome: "ok", Site: &matched, Fallback: fallback}, nil
}

// QRCodePNG implements Service.
func (s *SiteServiceImpl) QRCodePNG(ctx context.Context, siteID string) ([]byte, error) {
	site, ok := s.roster.SiteByID(siteID)
	if !ok {
		return nil, roster.ErrSiteNotFound
	}
	return qrcode.Encode(site.QRCodeValue, qrcode.Medium, 256)
}
