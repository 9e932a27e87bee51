// Package insights builds prompts for the generative-text API and routes
// the verbatim model output back to the caller.
package insights

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jurnalfx/jurnalfx/internal/modules/journal"
)

// TradePrompt asks for a psychological read of a single trade and its notes.
func TradePrompt(trade journal.Trade, accountCurrency string) string {
	return fmt.Sprintf(`Anda adalah psikolog trading. Analisis catatan dari satu trade ini:
Pair: %s
Profit/Loss: %.2f %s
Catatan: "%s"

Berikan analisis psikologis membangun 1-2 paragraf. Identifikasi bias (FOMO, dll.) dan berikan satu saran konkret.`,
		trade.Pair, trade.PL, accountCurrency, trade.Notes)
}

// PerformancePrompt asks for a mentor-style review of the full trade history.
// The history is embedded as JSON; a marshal failure falls back to an empty
// list rather than aborting the review.
func PerformancePrompt(trades []journal.Trade) string {
	data, err := json.Marshal(trades)
	if err != nil {
		data = []byte("[]")
	}
	return `Anda adalah mentor trading. Analisis riwayat trading ini. ` +
		`Berikan masukan tajam format poin-poin HTML (<ul><li>). ` +
		`Sertakan juga ringkasan dari trade dengan profit terbesar dan loss terbesar sebagai contoh. ` +
		`Fokus pada: pola profit/loss, strategi/pair terbaik & terburuk, kesalahan psikologis dari catatan, ` +
		`dan 1-2 saran perbaikan terpenting. Data: ` + string(data)
}

// RiskParams carry the inputs for a risk plan sanity check.
type RiskParams struct {
	AccountCurrency string  `json:"accountCurrency"`
	Balance         float64 `json:"balance"`
	RiskPercentage  float64 `json:"riskPercentage"`
	StopLoss        float64 `json:"stopLoss"`
	LotSize         float64 `json:"lotSize"`
	Pair            string  `json:"pair"`
}

// RiskPrompt asks for a sanity check and a layered-entry suggestion for a
// planned position.
func RiskPrompt(p RiskParams) string {
	return fmt.Sprintf(`Saya trading di akun %s dengan saldo %.2f. `+
		`Saya berencana membuka posisi di %s dengan risiko %.2f%% `+
		`dan stop loss %.1f pips. Kalkulator menyarankan total lot size %.2f. `+
		`Berdasarkan ini:
1. Berikan 'sanity check' singkat. Apakah ini rencana manajemen risiko yang masuk akal?
2. Berikan rekomendasi strategi layering (misal, 2-3 layer) dengan pembagian lot yang sesuai untuk setiap layer (total lot harus sama dengan %.2f) dan berikan saran perkiraan titik entry untuk setiap layer relatif terhadap harga saat ini.
Gunakan format HTML yang jelas.`,
		p.AccountCurrency, p.Balance, p.Pair, p.RiskPercentage, p.StopLoss, p.LotSize, p.LotSize)
}

// MarketPrompt asks for a neutral sentiment summary of current headlines
// scoped to the watched pairs.
func MarketPrompt(watchedPairs []string, newsHeadlines string) string {
	return fmt.Sprintf(`Anda adalah analis pasar keuangan netral. `+
		`Berdasarkan berita utama forex berikut: "%s". `+
		`Dan dengan fokus pada pasangan mata uang ini: "%s". `+
		`Berikan ringkasan sentimen pasar saat ini dalam 2-3 poin singkat (gunakan <ul><li>). `+
		`Hindari saran beli/jual, fokus hanya pada potensi volatilitas atau arah umum yang diimplikasikan oleh berita.`,
		strings.TrimSpace(newsHeadlines), strings.Join(watchedPairs, ", "))
}
