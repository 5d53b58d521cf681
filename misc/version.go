// Package misc holds build information. Values are stamped by the linker:
//
//	go build -ldflags "-X h2jsx/misc.version=1.2.3 -X h2jsx/misc.gitHash=$(git rev-parse --short HEAD)"
package misc

var (
	appName = "h2jsx"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
