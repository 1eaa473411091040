package qrand

// KeyMaterial is the data payload of /api/v1/crypto/key.
type KeyMaterial struct {
	Key       string `json:"key"`
	KeyBase64 string `json:"key_base64"`
	Bits      int    `json:"bits"`
}

// PasswordSpec describes a password request. The booleans select which
// character classes the service may draw from.
type PasswordSpec struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// HealthStatus is the payload of /api/v1/health. Unlike the other
// endpoints it is not wrapped in an envelope, and the service answers 503
// when the device is down.
type HealthStatus struct {
	Status          string `json:"status"`
	Device          string `json:"device"`
	BufferAvailable int    `json:"buffer_available"`
}

// DeviceInfo is the data payload of /api/v1/device/info. The device block
// is vendor-specific, so it stays loosely typed.
type DeviceInfo struct {
	Device          map[string]any `json:"device"`
	BufferSize      int            `json:"buffer_size"`
	BufferAvailable int            `json:"buffer_available"`
}

type passwordPayload struct {
	Password string `json:"password"`
}

type uuidPayload struct {
	UUID string `json:"uuid"`
}

type bytesPayload struct {
	Bytes  string `json:"bytes"`
	Count  int    `json:"count"`
	Format string `json:"format"`
}
