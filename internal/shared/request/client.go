package request

import "strings"

const (
	ClientWeb    = "WEB"
	ClientMobile = "MOBILE"
	ClientAPI    = "API"
)

// ResolveClientType memakai header X-Client-Type jika ada,
// selain itu menebak dari User-Agent.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToUpper(strings.TrimSpace(header)) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientAPI:
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	switch {
	case ua == "":
		return ClientAPI
	case strings.Contains(ua, "okhttp"), strings.Contains(ua, "dart"), strings.Contains(ua, "cfnetwork"):
		return ClientMobile
	case strings.Contains(ua, "mozilla"):
		return ClientWeb
	default:
		return ClientAPI
	}
}

func IsWebClient(clientType string) bool {
	return clientType == ClientWeb
}
