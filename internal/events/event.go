// Package events carries redirect lifecycle events over watermill.
package events

import "time"

const (
	TopicRedirectCreated  = "redirect.created"
	TopicRedirectAccessed = "redirect.accessed"
)

// RedirectCreated is emitted after a redirect has been stored.
type RedirectCreated struct {
	Code        string `json:"code"        msgpack:"code"`
	URL         string `json:"url"         msgpack:"url"`
	CreatedAt   int64  `json:"createdAt"   msgpack:"createdAt"`
	ContentType string `json:"contentType" msgpack:"contentType"`
	ClientIP    string `json:"clientIp"    msgpack:"clientIp"`
	UserAgent   string `json:"userAgent"   msgpack:"userAgent"`
}

// RedirectAccessed is emitted after a code has been resolved.
type RedirectAccessed struct {
	Code       string    `json:"code"       msgpack:"code"`
	AccessedAt time.Time `json:"accessedAt" msgpack:"accessedAt"`
	ClientIP   string    `json:"clientIp"   msgpack:"clientIp"`
	UserAgent  string    `json:"userAgent"  msgpack:"userAgent"`
	Referrer   string    `json:"referrer"   msgpack:"referrer"`
}
