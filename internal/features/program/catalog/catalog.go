// Package catalog is the static program configuration and the demo seed
// data. Programs are configuration input, not mutable state; only the
// selected program id lives in the draw store.
package catalog

import (
	"fmt"

	"github.com/google/uuid"

	drawmodels "luckydraw-backend/internal/features/draw/models"
	"luckydraw-backend/internal/features/program/models"
)

// Programs is the fixed event catalog.
var Programs = []models.Program{
	{
		ID:     "p1",
		Code:   "TET2025",
		Title:  "Tết 2025 – Lì xì vui vẻ",
		Type:   models.ProgramTypeOnline,
		Status: models.ProgramStatusOpen,
		Description: "Tri ân khách hàng dịp Tết 2025. " +
			"Quay số nhận e-voucher và quà Tết.",
		Rules: []string{
			"Mỗi SĐT có số lượt quay được cấp",
			"Giải không quy đổi tiền mặt",
		},
		Theme: "tet",
	},
	{
		ID:     "p2",
		Code:   "SHOWROOM",
		Title:  "Khai trương Showroom – Lồng cầu",
		Type:   models.ProgramTypeCage,
		Status: models.ProgramStatusOpen,
		Description: "Sự kiện tại điểm bán. " +
			"MC quay lồng cầu, nhập số hiển thị màn hình lớn.",
		Rules: []string{"Kết quả công bố tại sân khấu là cuối cùng"},
		Theme: "showroom",
	},
	{
		ID:          "p3",
		Code:        "SUMMER2025",
		Title:       "Summer Splash 2025",
		Type:        models.ProgramTypeOnline,
		Status:      models.ProgramStatusUpcoming,
		Description: "Quay online xuyên hè cùng quà công nghệ.",
		Theme:       "ocean",
	},
}

// Default returns the program selected at startup.
func Default() models.Program {
	return Programs[0]
}

// Lookup finds a program by id.
func Lookup(id string) (models.Program, bool) {
	for _, p := range Programs {
		if p.ID == id {
			return p, true
		}
	}
	return models.Program{}, false
}

// SeedPrizes builds the demo prize pool, tiered S down to C.
func SeedPrizes() []drawmodels.Prize {
	specs := []struct {
		label string
		count int
		tier  drawmodels.PrizeTier
	}{
		{"Xe máy Honda SH", 1, drawmodels.PrizeTierS},
		{"iPhone 16 Pro Max", 1, drawmodels.PrizeTierS},
		{"TV Samsung 65\"", 2, drawmodels.PrizeTierA},
		{"MacBook Air M3", 2, drawmodels.PrizeTierA},
		{"Apple Watch S10", 3, drawmodels.PrizeTierB},
		{"AirPods 4", 5, drawmodels.PrizeTierB},
		{"Voucher du lịch 5.000.000đ", 6, drawmodels.PrizeTierB},
		{"Thẻ quà tặng 1.000.000đ", 10, drawmodels.PrizeTierC},
		{"Bình giữ nhiệt", 20, drawmodels.PrizeTierC},
		{"Áo thun kỷ niệm", 30, drawmodels.PrizeTierC},
	}
	prizes := make([]drawmodels.Prize, 0, len(specs))
	for _, sp := range specs {
		prizes = append(prizes, drawmodels.Prize{
			ID:    uuid.NewString(),
			Label: sp.label,
			Count: sp.count,
			Tier:  sp.tier,
		})
	}
	return prizes
}

var seedNames = []string{
	"Nguyễn An", "Trần Bình", "Lê Chi", "Phạm Dũng", "Võ Em", "Bùi Gia",
	"Đoàn Hà", "Hồ Khang", "Phan Linh", "Đặng Minh", "Đỗ Ngân", "Huỳnh Phúc",
	"Lý Quân", "Trịnh Sơn", "Tạ Trâm", "Phùng Uyên", "Cao Vy", "Đinh Yến",
}

// SeedParticipants generates the demo roster. Phones are deterministic so a
// reseeded control replica produces the same roster.
func SeedParticipants(n int) []drawmodels.Participant {
	participants := make([]drawmodels.Participant, 0, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("%s %d", seedNames[i%len(seedNames)], i+1)
		phone := fmt.Sprintf("09%08d", 10000000+i*317)
		participants = append(participants, drawmodels.Participant{
			ID:    uuid.NewString(),
			Name:  name,
			Phone: phone[:10],
			Count: i%5 + 1,
		})
	}
	return participants
}
