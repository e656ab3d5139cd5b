package consts

const (
	ApplicationName    = "Image Board"
	ApplicationVersion = "v1.0.0"
)
