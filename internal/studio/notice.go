package studio

import "strings"

// Notice variants.
const (
	VariantSuccess = "success"
	VariantWarning = "warning"
)

// Notice is a short message shown to the user after an action.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// IsZero reports whether n carries no message.
func (n Notice) IsZero() bool { return n.Title == "" }

var (
	noticeEmptyDownload = Notice{
		Title:       "Cannot download empty QR code",
		Description: "Please enter some text first.",
		Variant:     VariantWarning,
	}
	noticeEmptyCopy = Notice{
		Title:       "Cannot copy empty text",
		Description: "Please enter some text first.",
		Variant:     VariantWarning,
	}
	noticeCopyFailed = Notice{
		Title:       "Failed to copy",
		Description: "Could not copy text to clipboard.",
		Variant:     VariantWarning,
	}
	noticeCopied = Notice{
		Title:       "Copied to clipboard",
		Description: "Text has been copied to your clipboard.",
		Variant:     VariantSuccess,
	}
)

func downloadedNotice(format string) Notice {
	return Notice{
		Title:       "QR Code downloaded",
		Description: "Your QR code has been saved as a " + strings.ToUpper(format) + " file.",
		Variant:     VariantSuccess,
	}
}
