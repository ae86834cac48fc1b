package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID builds an identifier of the form PREFIX + YYYYMMDD + 8 uppercase hex
// characters, e.g. COL20260115A1B2C3D4.
func newID(prefix string) string {
	stamp := time.Now().UTC().Format("20060102")
	unique := strings.ToUpper(strings.SplitN(uuid.NewString(), "-", 2)[0])
	return prefix + stamp + unique
}

// newItemID builds item master ids of the form ITM-XXXXXXXX.
func newItemID() string {
	return fmt.Sprintf("ITM-%s", strings.ToUpper(uuid.NewString()[:8]))
}
