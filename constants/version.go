package constants

// Version is overwritten at build time with -ldflags "-X ...constants.Version=".
var Version = "source"
