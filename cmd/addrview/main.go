// Command addrview derives the display values for one fetched address
// snapshot: canonical hex, USD valuation, contract classification, QR
// payload and preferred name. It reads local files only.
package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jsvisa/blockscout/internal/metrics"
	"github.com/jsvisa/blockscout/pkg/addressview"
	"github.com/jsvisa/blockscout/pkg/chain"
	"github.com/jsvisa/blockscout/pkg/config"
)

// report is the JSON document printed to stdout.
type report struct {
	Hash               string `json:"hash"`
	FormattedUSD       string `json:"formatted_usd,omitempty"`
	Contract           bool   `json:"contract"`
	Verified           bool   `json:"verified"`
	ReadOnlyFunctions  bool   `json:"read_only_functions"`
	BalanceBlockNumber string `json:"balance_block_number,omitempty"`
	PrimaryName        string `json:"primary_name,omitempty"`
	QRCode             string `json:"qr_code,omitempty"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	addressPath := flag.String("address", "", "Path to address snapshot JSON file")
	usdRate := flag.String("usd-rate", "", "Native coin USD rate (decimal, optional)")
	qrOut := flag.String("qr-out", "", "Write the QR PNG to this file instead of embedding it")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *addressPath == "" {
		logger.Fatal("missing required -address flag")
	}

	addr, err := loadAddress(*addressPath)
	if err != nil {
		logger.Fatal("Failed to load address snapshot", zap.Error(err))
	}
	logger.Info("Loaded address snapshot",
		zap.String("address", addressview.Hash(addr)),
		zap.Int("names", len(addr.Names)))

	token := &chain.Token{}
	if *usdRate != "" {
		rate, err := decimal.NewFromString(*usdRate)
		if err != nil {
			logger.Fatal("Invalid -usd-rate", zap.Error(err))
		}
		token.USDValue = &rate
	}

	out, err := buildReport(addr, token, cfg.QR.Size, *qrOut)
	if err != nil {
		logger.Fatal("Failed to derive address views", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Fatal("Failed to encode report", zap.Error(err))
	}
}

func loadAddress(path string) (*chain.Address, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read address snapshot: %w", err)
	}
	var addr chain.Address
	if err := json.Unmarshal(data, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

func buildReport(addr *chain.Address, token *chain.Token, qrSize int, qrOut string) (*report, error) {
	out := &report{
		Hash:               addressview.Hash(addr),
		Contract:           addressview.IsContract(addr),
		Verified:           addressview.IsVerified(addr),
		ReadOnlyFunctions:  addressview.HasVerifiedReadOnlyFunctions(addr),
		BalanceBlockNumber: addressview.BalanceBlockNumber(addr),
	}
	metrics.AddressViewsTotal.WithLabelValues("classification").Inc()

	if usd, ok := addressview.FormattedUSD(addr, token); ok {
		out.FormattedUSD = usd
		metrics.AddressViewsTotal.WithLabelValues("usd").Inc()
	}
	if name, ok := addressview.PrimaryName(addr); ok {
		out.PrimaryName = name
		metrics.AddressViewsTotal.WithLabelValues("primary_name").Inc()
	}

	qr, err := addressview.QRCodeSized(addr, qrSize)
	if err != nil {
		return nil, err
	}
	metrics.AddressViewsTotal.WithLabelValues("qr").Inc()
	if qrOut == "" {
		out.QRCode = qr
		return out, nil
	}
	png, err := base64.StdEncoding.DecodeString(qr)
	if err != nil {
		return nil, fmt.Errorf("decode qr payload: %w", err)
	}
	if err := os.WriteFile(qrOut, png, 0o644); err != nil {
		return nil, fmt.Errorf("write qr image: %w", err)
	}
	return out, nil
}
