package files

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/saintfish/chardet"
	"go.uber.org/zap"
)

// diagnose describes content that failed UTF-8 validation.
func diagnose(data []byte) []zap.Field {
	fields := []zap.Field{
		zap.Int("size", len(data)),
		zap.String("mime", mimetype.Detect(data).String()),
	}

	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err == nil && result != nil {
		fields = append(fields,
			zap.String("charset", strings.ToLower(result.Charset)),
			zap.Int("confidence", result.Confidence),
		)
	}

	return fields
}
