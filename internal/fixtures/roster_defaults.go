package fixtures

import (
	"github.com/genba-cloud/genba-attendance/internal/domain/roster"
)

// ==========================================
// SEEDED ROSTER DATA
// ==========================================

// DefaultCurrentWorkerID is the worker logged in on the kiosk when
// CURRENT_WORKER_ID is not set.
const DefaultCurrentWorkerID = "w2"

// DefaultWorkers returns the seeded worker roster, grouped by partner
// company.
func DefaultWorkers() []roster.Worker {
	return []roster.Worker{
		// 山田建設
		{ID: "w1", Name: "山田 太郎", Company: "山田建設", Occupation: "現場監督", AvatarURL: "https://picsum.photos/id/1005/100/100"},
		{ID: "w1-2", Name: "石川 健", Company: "山田建設", Occupation: "現場事務", AvatarURL: "https://picsum.photos/id/1003/100/100"},
		// 鈴木電設
		{ID: "w2", Name: "鈴木 一郎", Company: "鈴木電設", Occupation: "電気工事士", AvatarURL: "https://picsum.photos/id/1012/100/100"},
		{ID: "w2-2", Name: "鈴木 次郎", Company: "鈴木電設", Occupation: "電気工事士", AvatarURL: "https://picsum.photos/id/1025/100/100"},
		{ID: "w2-3", Name: "電気屋 サブ", Company: "鈴木電設", Occupation: "見習い", AvatarURL: "https://picsum.photos/id/1024/100/100"},
		// 佐藤内装
		{ID: "w3", Name: "佐藤 花子", Company: "佐藤内装", Occupation: "内装工", AvatarURL: "https://picsum.photos/id/1027/100/100"},
		// 田中配管
		{ID: "w4", Name: "田中 健太", Company: "田中配管", Occupation: "配管工", AvatarURL: "https://picsum.photos/id/1011/100/100"},
		// 高橋塗装
		{ID: "w5", Name: "高橋 優", Company: "高橋塗装", Occupation: "塗装工", AvatarURL: "https://picsum.photos/id/1006/100/100"},
		{ID: "w5-2", Name: "高橋 誠", Company: "高橋塗装", Occupation: "塗装工", AvatarURL: "https://picsum.photos/id/1008/100/100"},
	}
}

// DefaultSites returns the seeded site roster. The first site doubles as the
// default for seeded history and manual records without a site.
func DefaultSites() []roster.Site {
	return []roster.Site{
		{ID: "s1", Name: "渋谷桜丘プロジェクト A工区", Address: "東京都渋谷区桜丘町", QRCodeValue: "site-shibuya-a"},
		{ID: "s2", Name: "新宿駅西口再開発 B工区", Address: "東京都新宿区西新宿", QRCodeValue: "site-shinjuku-b"},
	}
}
