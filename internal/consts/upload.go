package consts

// AllowedImageExtensions 允许上传的扩展名（小写）
var AllowedImageExtensions = []string{".jpg", ".jpeg", ".gif", ".png"}

func IsAllowedImageExtension(ext string) bool {
	for _, allowed := range AllowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

const (
	// MaxCommentLength 评论最大长度（字符数）
	MaxCommentLength = 1024

	// DefaultDeliverMaxWidth 展示版本默认最大宽度
	DefaultDeliverMaxWidth = 800

	// DefaultDeliverMaxHeight 展示版本默认最大高度
	DefaultDeliverMaxHeight = 10000

	// ContextIdentityKey gin 上下文中保存当前身份的键
	ContextIdentityKey = "identity"
)
