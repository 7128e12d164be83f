package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// SignedURLTTLSeconds is the lifetime of every capability URL handed out for
// an artwork blob, in both the owner and the guest gallery.
const SignedURLTTLSeconds = 3600

// DefaultShareLabel is attached to share links created without a label.
const DefaultShareLabel = "Grandparents"
