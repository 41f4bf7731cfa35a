package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	tlslistener "github.com/opd-ai/wileedot"

	"github.com/opd-ai/prdbot/srv"
	"github.com/opd-ai/prdbot/srv/util"
)

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		util.Logger.Fatal("ANTHROPIC_API_KEY environment variable is required")
	}

	server := srv.NewServer(srv.NewClaudeClient(apiKey))

	addr := os.Getenv("PRD_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	// With a domain configured the listener obtains and renews its own
	// certificates; otherwise plain HTTP on addr.
	if domain := os.Getenv("PRD_DOMAIN"); domain != "" {
		certDir := os.Getenv("PRD_CERT_DIR")
		if certDir == "" {
			certDir = "certs"
		}
		ln, err := tlslistener.New(tlslistener.Config{
			Domain:         domain,
			AllowedDomains: []string{domain},
			CertDir:        certDir,
			Email:          os.Getenv("PRD_TLS_EMAIL"),
		})
		if err != nil {
			util.Logger.Fatal("tls listener", "error", err)
		}
		defer ln.Close()

		util.Logger.Info("server starting", "domain", domain)
		if err := http.Serve(ln, server); err != nil {
			util.Logger.Fatal("server stopped", "error", err)
		}
		return
	}

	util.Logger.Info("server starting", "addr", addr)
	if err := http.ListenAndServe(addr, server); err != nil {
		util.Logger.Fatal("server stopped", "error", err)
	}
}
