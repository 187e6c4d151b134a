package consts

// Keys masked out of request logs. Private keys in particular must never
// reach the log stream.
var SensitiveKeys = []string{
	"private_key",
	"privateKey",
	"Authorization",
	"Cookie",
}
