package crisp

// Version and BuildDate are overridden at link time:
//
//	go build -ldflags "-X github.com/ChristopherBilg/crisp.Version=v0.2.0"
var (
	Version   = "v0.1.0"
	BuildDate = "unknown"
)
