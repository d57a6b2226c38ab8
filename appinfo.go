package stripekit

import "runtime"

// AppInfo identifies the application or plugin built on top of this
// binding. It is advertised inside the X-Stripe-User-Agent header.
type AppInfo struct {
	Name      string
	Version   string
	URL       string
	PartnerID string
}

// DeviceInfo describes the platform a request originates from. Every field
// is optional; absent ones are dropped from the user-agent payload.
type DeviceInfo struct {
	// OSVersion is the operating system release.
	OSVersion string
	// Type identifies the platform, such as a hardware model identifier.
	Type string
	// Model is the marketing name of the device.
	Model string
	// VendorID is an install-scoped identifier, where the platform has one.
	VendorID string
}

// DeviceInfoProvider supplies platform metadata for the user-agent header.
// The default provider reports the Go runtime's view of the host.
type DeviceInfoProvider interface {
	DeviceInfo() DeviceInfo
}

type runtimeDeviceInfo struct{}

func (runtimeDeviceInfo) DeviceInfo() DeviceInfo {
	return DeviceInfo{
		Type: runtime.GOOS + "/" + runtime.GOARCH,
	}
}
