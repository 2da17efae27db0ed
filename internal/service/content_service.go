package service

import (
	"context"
	"strings"

	"ai-notecapture-be/internal/constant"
	"ai-notecapture-be/internal/dto"
	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/pkg/logger"
	"ai-notecapture-be/internal/pkg/serverutils"
	"ai-notecapture-be/internal/repository/contract"
	"ai-notecapture-be/internal/repository/specification"
	"ai-notecapture-be/pkg/clipboard"
	"ai-notecapture-be/pkg/contenttype"
	"ai-notecapture-be/pkg/events"
	"ai-notecapture-be/pkg/htmltext"
)

// ClipboardReader performs one explicit clipboard read.
type ClipboardReader interface {
	Read(ctx context.Context) (*clipboard.Data, error)
}

type IContentService interface {
	Draft(data *clipboard.Data) (*dto.DraftResponse, error)
	Classify(text string) *dto.ClassifyResponse
	Create(ctx context.Context, req *dto.CreateContentRequest) (*dto.ContentResponse, error)
	CaptureFromClipboard(ctx context.Context, req *dto.CaptureClipboardRequest) (*dto.ContentResponse, error)
	Show(ctx context.Context, id string) (*dto.ContentResponse, error)
	Update(ctx context.Context, req *dto.UpdateContentRequest) (*dto.ContentResponse, error)
	Delete(ctx context.Context, id string) error
	ListByNotebook(ctx context.Context, notebookId, query, contentType string) ([]*dto.ContentResponse, error)
	TypeCounts(ctx context.Context, notebookId string) (*dto.ContentStatsResponse, error)
}

type contentService struct {
	notebookRepo     contract.NotebookRepository
	contentRepo      contract.ContentRepository
	clipboardReader  ClipboardReader
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewContentService(
	notebookRepo contract.NotebookRepository,
	contentRepo contract.ContentRepository,
	clipboardReader ClipboardReader,
	publisherService IPublisherService,
	log logger.ILogger,
) IContentService {
	return &contentService{
		notebookRepo:     notebookRepo,
		contentRepo:      contentRepo,
		clipboardReader:  clipboardReader,
		publisherService: publisherService,
		logger:           log,
	}
}

// Draft turns clipboard data into the fields of a capture form. An image
// wins over text; HTML is preferred over plain text when both are present.
func (s *contentService) Draft(data *clipboard.Data) (*dto.DraftResponse, error) {
	if data == nil {
		return nil, ErrNothingToCapture
	}

	if data.Type == clipboard.TypeImage && data.Image != "" {
		return &dto.DraftResponse{
			Type:    string(contenttype.Image),
			Title:   constant.ImageCaptureTitle,
			Content: data.Image,
		}, nil
	}

	text := data.Text
	if data.HTML != "" {
		extracted, err := htmltext.ExtractText(data.HTML)
		if err != nil {
			s.logger.Warn("ContentService", "Failed to extract text from HTML", map[string]interface{}{"error": err.Error()})
		} else if strings.TrimSpace(extracted) != "" {
			text = extracted
		}
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNothingToCapture
	}

	return &dto.DraftResponse{
		Type:    string(contenttype.Classify(text)),
		Title:   draftTitle(text),
		Content: text,
	}, nil
}

func (s *contentService) Classify(text string) *dto.ClassifyResponse {
	return &dto.ClassifyResponse{Type: string(contenttype.Classify(text))}
}

func (s *contentService) Create(ctx context.Context, req *dto.CreateContentRequest) (*dto.ContentResponse, error) {
	if err := s.requireNotebook(ctx, req.NotebookId); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, serverutils.NewBadRequestError("Title and content are required")
	}

	kind := contenttype.Classify(content)
	if req.Type != "" {
		parsed, err := contenttype.ParseKind(req.Type)
		if err != nil {
			return nil, serverutils.NewBadRequestError(err.Error())
		}
		kind = parsed
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = constant.CaptureSourceManual
	}

	item, err := s.contentRepo.Add(ctx, entity.NewContentItem{
		NotebookId: req.NotebookId,
		Type:       kind,
		Title:      title,
		Content:    content,
		Metadata: &entity.ContentMetadata{
			Url:      strings.TrimSpace(req.Url),
			Language: strings.TrimSpace(req.Language),
			Tags:     parseTags(req.Tags),
			Source:   source,
		},
	})
	if err != nil {
		return nil, err
	}

	// the item is stored by now; count drift is logged, not returned
	if err := s.notebookRepo.IncrementItemCount(ctx, item.NotebookId); err != nil {
		s.logger.Error("ContentService", "Failed to increment item count", map[string]interface{}{
			"content_id":  item.Id,
			"notebook_id": item.NotebookId,
			"error":       err.Error(),
		})
	}

	s.logger.Info("ContentService", "Content captured", map[string]interface{}{
		"content_id":  item.Id,
		"notebook_id": item.NotebookId,
		"type":        item.Type.String(),
		"source":      source,
	})
	s.publisherService.Publish(ctx, events.ContentAdded, map[string]interface{}{
		"content_id":  item.Id,
		"notebook_id": item.NotebookId,
		"type":        item.Type.String(),
		"title":       item.Title,
	})

	return toContentResponse(item), nil
}

// CaptureFromClipboard reads the host clipboard on demand and stores the
// draft derived from it. Unlike background polling, read failures surface.
func (s *contentService) CaptureFromClipboard(ctx context.Context, req *dto.CaptureClipboardRequest) (*dto.ContentResponse, error) {
	if err := s.requireNotebook(ctx, req.NotebookId); err != nil {
		return nil, err
	}

	data, err := s.clipboardReader.Read(ctx)
	if err != nil {
		s.logger.Warn("ContentService", "Clipboard read failed", map[string]interface{}{"error": err.Error()})
		return nil, ErrClipboardRead
	}

	draft, err := s.Draft(data)
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, &dto.CreateContentRequest{
		NotebookId: req.NotebookId,
		Type:       draft.Type,
		Title:      draft.Title,
		Content:    draft.Content,
		Tags:       req.Tags,
		Source:     constant.CaptureSourceClipboard,
	})
}

func (s *contentService) Show(ctx context.Context, id string) (*dto.ContentResponse, error) {
	item, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toContentResponse(item), nil
}

func (s *contentService) Update(ctx context.Context, req *dto.UpdateContentRequest) (*dto.ContentResponse, error) {
	current, err := s.find(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	var patch entity.ContentItemPatch
	moved := false
	if req.NotebookId != nil && *req.NotebookId != current.NotebookId {
		if err := s.requireNotebook(ctx, *req.NotebookId); err != nil {
			return nil, err
		}
		patch.NotebookId = req.NotebookId
		moved = true
	}
	if req.Type != nil {
		kind, err := contenttype.ParseKind(*req.Type)
		if err != nil {
			return nil, serverutils.NewBadRequestError(err.Error())
		}
		patch.Type = &kind
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, serverutils.NewBadRequestError("Title cannot be empty")
		}
		patch.Title = &title
	}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, serverutils.NewBadRequestError("Content cannot be empty")
		}
		patch.Content = &content
	}
	if req.Tags != nil || req.Url != nil || req.Language != nil {
		md := entity.ContentMetadata{}
		if current.Metadata != nil {
			md = *current.Metadata
		}
		if req.Tags != nil {
			md.Tags = parseTags(*req.Tags)
		}
		if req.Url != nil {
			md.Url = strings.TrimSpace(*req.Url)
		}
		if req.Language != nil {
			md.Language = strings.TrimSpace(*req.Language)
		}
		patch.Metadata = &md
	}

	if err := s.contentRepo.Update(ctx, req.Id, patch); err != nil {
		return nil, err
	}

	if moved {
		if err := s.notebookRepo.DecrementItemCount(ctx, current.NotebookId); err != nil {
			return nil, err
		}
		if err := s.notebookRepo.IncrementItemCount(ctx, *req.NotebookId); err != nil {
			return nil, err
		}
	}

	updated, err := s.find(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	s.publisherService.Publish(ctx, events.ContentUpdated, map[string]interface{}{
		"content_id":  updated.Id,
		"notebook_id": updated.NotebookId,
	})
	return toContentResponse(updated), nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	item, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.notebookRepo.DecrementItemCount(ctx, item.NotebookId); err != nil {
		return err
	}

	s.publisherService.Publish(ctx, events.ContentDeleted, map[string]interface{}{
		"content_id":  item.Id,
		"notebook_id": item.NotebookId,
	})
	return nil
}

// ListByNotebook returns the notebook's items newest first, narrowed by a
// case-insensitive search over title and content and an optional type.
func (s *contentService) ListByNotebook(ctx context.Context, notebookId, query, contentType string) ([]*dto.ContentResponse, error) {
	if err := s.requireNotebook(ctx, notebookId); err != nil {
		return nil, err
	}
	var kind contenttype.Kind
	if strings.TrimSpace(contentType) != "" {
		parsed, err := contenttype.ParseKind(contentType)
		if err != nil {
			return nil, serverutils.NewBadRequestError(err.Error())
		}
		kind = parsed
	}

	items, err := s.contentRepo.FindAll(ctx,
		specification.ContentByNotebookID{NotebookID: notebookId},
		specification.ContentMatches{Query: query},
		specification.ContentByType{Type: kind.String()},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContentResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toContentResponse(item))
	}
	return result, nil
}

func (s *contentService) TypeCounts(ctx context.Context, notebookId string) (*dto.ContentStatsResponse, error) {
	if err := s.requireNotebook(ctx, notebookId); err != nil {
		return nil, err
	}

	items, err := s.contentRepo.ListByNotebook(ctx, notebookId)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(contenttype.Kinds))
	for _, kind := range contenttype.Kinds {
		counts[kind.String()] = 0
	}
	for _, item := range items {
		counts[item.Type.String()]++
	}

	return &dto.ContentStatsResponse{Total: len(items), Counts: counts}, nil
}

func (s *contentService) requireNotebook(ctx context.Context, notebookId string) error {
	notebook, err := s.notebookRepo.FindOne(ctx, notebookId)
	if err != nil {
		return err
	}
	if notebook == nil {
		return ErrNotebookNotFound
	}
	return nil
}

func (s *contentService) find(ctx context.Context, id string) (*entity.ContentItem, error) {
	item, err := s.contentRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrContentNotFound
	}
	return item, nil
}

// draftTitle is the first line of text cut to MaxTitleRunes.
func draftTitle(text string) string {
	first, _, _ := strings.Cut(strings.TrimLeft(text, " \t\r\n"), "\n")
	first = strings.TrimSpace(first)
	if runes := []rune(first); len(runes) > constant.MaxTitleRunes {
		first = string(runes[:constant.MaxTitleRunes])
	}
	if first == "" {
		return constant.DefaultCaptureTitle
	}
	return first
}

// parseTags splits a comma separated list, dropping blanks. No tags is nil.
func parseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func toContentResponse(item *entity.ContentItem) *dto.ContentResponse {
	res := &dto.ContentResponse{
		Id:         item.Id,
		NotebookId: item.NotebookId,
		Type:       item.Type.String(),
		Title:      item.Title,
		Content:    item.Content,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
	if item.Metadata != nil {
		res.Metadata = &dto.ContentMetadataResponse{
			Url:      item.Metadata.Url,
			Language: item.Metadata.Language,
			Tags:     item.Metadata.Tags,
			Source:   item.Metadata.Source,
		}
	}
	return res
}
