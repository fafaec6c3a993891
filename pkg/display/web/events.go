package web

// Event is the first byte of a message sent by a client.
type Event = uint8

const (
	_ Event = iota
	// Compression enables (1) or disables (0) brotli compressed frames.
	Compression
	// FrameCaching enables (1) or disables (0) the frame cache.
	FrameCaching
	// RegisterUsername names the client. The rest of the message is
	// the username.
	RegisterUsername
	// KeyDown presses the keypad key held in the second byte.
	KeyDown
	// KeyUp releases the keypad key held in the second byte.
	KeyUp
	// PausePlay toggles the pause state of the emulator.
	PausePlay
	// Reset resets the emulator.
	Reset
	KeepAlive = 254
	Closing   = 255
)

// Type is the first byte of a message sent to the clients.
type Type = uint8

const (
	// Frame is a full frame: a little endian cache index, followed
	// by the (optionally compressed) RGBA frame.
	Frame Type = iota
	// FrameCache repeats the frame held at a cache index.
	FrameCache
	// FrameCacheSync sends the cache to a connecting client, as a
	// sequence of length, index and data.
	FrameCacheSync
	// FrameSync sends the current frame to a connecting client.
	FrameSync
	ClientInfo
	ClientListSync
	ClientClosing
	// ServerInfo holds the hub settings byte, followed by the ID and
	// average latency of each client.
	ServerInfo
	// Title holds the window title sent by the emulator.
	Title
	// Sound holds 1 while the emulator is beeping.
	Sound
)

// noCache is the cache index sent with frames that were not cached.
const noCache = 0xFFFF
