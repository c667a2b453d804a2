package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// VerifyOutcome is the result of one webhook signature check.
type VerifyOutcome string

const (
	VerifyOK                VerifyOutcome = "ok"
	VerifyMissingHeader     VerifyOutcome = "missing_header"
	VerifyMalformedHeader   VerifyOutcome = "malformed_header"
	VerifyTimestampSkew     VerifyOutcome = "timestamp_skew"
	VerifySignatureMismatch VerifyOutcome = "signature_mismatch"
)

func (o VerifyOutcome) OK() bool { return o == VerifyOK }

const DefaultTolerance = 5 * time.Minute

type signatureHeader struct {
	timestamp  int64
	signatures []string
}

// Verifier checks headers of the form "t=<unix>,v1=<hex>[,v1=<hex>...]" where each
// v1 is HMAC-SHA256(secret, "<t>.<raw body>").
type Verifier struct {
	secret    []byte
	tolerance time.Duration
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Verifier{secret: []byte(secret), tolerance: tolerance}
}

func (v *Verifier) Verify(header string, body []byte, now time.Time) VerifyOutcome {
	if strings.TrimSpace(header) == "" {
		return VerifyMissingHeader
	}
	parsed, ok := parseSignatureHeader(header)
	if !ok {
		return VerifyMalformedHeader
	}
	if !v.withinTolerance(parsed.timestamp, now) {
		return VerifyTimestampSkew
	}
	expected := v.Sign(parsed.timestamp, body)
	for _, sig := range parsed.signatures {
		if hmac.Equal([]byte(expected), []byte(strings.ToLower(sig))) {
			return VerifyOK
		}
	}
	return VerifySignatureMismatch
}

// Sign returns the hex v1 signature for body at timestamp ts.
func (v *Verifier) Sign(ts int64, body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Header builds a complete signature header, handy for clients and tests.
func (v *Verifier) Header(ts int64, body []byte) string {
	return "t=" + strconv.FormatInt(ts, 10) + ",v1=" + v.Sign(ts, body)
}

func (v *Verifier) withinTolerance(ts int64, now time.Time) bool {
	skew := now.Sub(time.Unix(ts, 0))
	if skew < 0 {
		skew = -skew
	}
	return skew <= v.tolerance
}

func parseSignatureHeader(header string) (signatureHeader, bool) {
	var out signatureHeader
	haveTimestamp := false

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return signatureHeader{}, false
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return signatureHeader{}, false
			}
			out.timestamp = ts
			haveTimestamp = true
		case "v1":
			if value != "" {
				out.signatures = append(out.signatures, value)
			}
		default:
			// other schemes (v0, ...) are ignored
		}
	}

	if !haveTimestamp || len(out.signatures) == 0 {
		return signatureHeader{}, false
	}
	return out, true
}
