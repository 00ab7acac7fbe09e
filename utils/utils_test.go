package utils

import (
	"edusphere/config"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCertificateNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^CERT-\d+-[A-Z0-9]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		number := GenerateCertificateNumber()
		assert.Regexp(t, pattern, number)
		assert.False(t, seen[number], "duplicate certificate number %s", number)
		seen[number] = true
	}
}

func TestGenerateCertificateNumberUsesConfiguredPrefix(t *testing.T) {
	config.AppConfig = &config.Config{CertificatePrefix: "EDU"}
	t.Cleanup(func() { config.AppConfig = nil })

	assert.Regexp(t, `^EDU-\d+-[A-Z0-9]{8}$`, GenerateCertificateNumber())
}

func TestGeneratePurchaseReference(t *testing.T) {
	reference := GeneratePurchaseReference()
	assert.Regexp(t, `^PUR-[A-Z0-9]{16}$`, reference)
	assert.NotEqual(t, reference, GeneratePurchaseReference())
}
