package utils

import (
	"edusphere/config"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateCertificateNumber builds a collision-resistant public certificate
// number: prefix + nanosecond timestamp + random suffix. The certificates
// table enforces uniqueness; callers retry on conflict.
func GenerateCertificateNumber() string {
	prefix := "CERT"
	if config.AppConfig != nil && config.AppConfig.CertificatePrefix != "" {
		prefix = config.AppConfig.CertificatePrefix
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixNano(), suffix)
}

// GeneratePurchaseReference returns a unique reference id for a purchase record
func GeneratePurchaseReference() string {
	return "PUR-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16]
}
