package ocr

import (
	"context"
	"fmt"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/documents"
)

// inline file annotation is limited to five pages per request
const maxInlinePages = 5

type annotator interface {
	BatchAnnotateImages(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateImagesResponse, error)
	BatchAnnotateFiles(ctx context.Context, req *visionpb.BatchAnnotateFilesRequest, opts ...gax.CallOption) (*visionpb.BatchAnnotateFilesResponse, error)
	Close() error
}

// Vision extracts text with Google Cloud Vision DOCUMENT_TEXT_DETECTION.
type Vision struct {
	client annotator
}

// NewVision connects to Cloud Vision. credentialsFile may be empty to use
// application default credentials.
func NewVision(ctx context.Context, credentialsFile string) (*Vision, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	cli, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &Vision{client: cli}, nil
}

func (v *Vision) Close() error {
	if v == nil || v.client == nil {
		return nil
	}
	return v.client.Close()
}

// ExtractText handles images and PDFs. PDFs are read inline, first five pages only.
func (v *Vision) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty input", domain.ErrExtractionFailed)
	}
	features := []*visionpb.Feature{{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION}}

	if mimeType == "application/pdf" {
		return v.extractPDF(ctx, data, features)
	}

	resp, err := v.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: data},
			Features: features,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: vision BatchAnnotateImages: %v", domain.ErrExtractionFailed, err)
	}
	if resp == nil || len(resp.Responses) == 0 {
		return "", fmt.Errorf("%w: no text detected, image may be blurry or low quality", domain.ErrExtractionFailed)
	}
	return imageText([]*visionpb.AnnotateImageResponse{resp.Responses[0]})
}

func (v *Vision) extractPDF(ctx context.Context, data []byte, features []*visionpb.Feature) (string, error) {
	pages := make([]int32, 0, maxInlinePages)
	for i := int32(1); i <= maxInlinePages; i++ {
		pages = append(pages, i)
	}
	resp, err := v.client.BatchAnnotateFiles(ctx, &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{{
			InputConfig: &visionpb.InputConfig{Content: data, MimeType: "application/pdf"},
			Features:    features,
			Pages:       pages,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: vision BatchAnnotateFiles: %v", domain.ErrExtractionFailed, err)
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return "", fmt.Errorf("%w: no text detected in PDF, scans may be poor quality", domain.ErrExtractionFailed)
	}
	fr := resp.Responses[0]
	if msg := fr.GetError().GetMessage(); msg != "" {
		return "", fmt.Errorf("%w: vision annotate error: %s", domain.ErrExtractionFailed, msg)
	}
	return imageText(fr.Responses)
}

// imageText joins per-page text. All pages blank is an extraction failure.
func imageText(responses []*visionpb.AnnotateImageResponse) (string, error) {
	parts := make([]string, 0, len(responses))
	for _, r := range responses {
		if r == nil {
			continue
		}
		if msg := r.GetError().GetMessage(); msg != "" {
			return "", fmt.Errorf("%w: vision annotate error: %s", domain.ErrExtractionFailed, msg)
		}
		parts = append(parts, r.GetFullTextAnnotation().GetText())
	}
	text := strings.Join(parts, "\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text detected, scan may be blurry or low quality", domain.ErrExtractionFailed)
	}
	return text, nil
}
