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
	"ai-notecapture-be/pkg/events"
)

type INotebookService interface {
	GetAll(ctx context.Context, query string) ([]*dto.NotebookResponse, error)
	Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error)
	Show(ctx context.Context, id string) (*dto.NotebookResponse, error)
	Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error)
	Delete(ctx context.Context, id string) error
}

type notebookService struct {
	notebookRepo     contract.NotebookRepository
	contentRepo      contract.ContentRepository
	chatRepo         contract.ChatMessageRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNotebookService(
	notebookRepo contract.NotebookRepository,
	contentRepo contract.ContentRepository,
	chatRepo contract.ChatMessageRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) INotebookService {
	return &notebookService{
		notebookRepo:     notebookRepo,
		contentRepo:      contentRepo,
		chatRepo:         chatRepo,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *notebookService) GetAll(ctx context.Context, query string) ([]*dto.NotebookResponse, error) {
	notebooks, err := s.notebookRepo.FindAll(ctx, specification.NotebookNameContains{Query: query})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotebookResponse, 0, len(notebooks))
	for _, nb := range notebooks {
		result = append(result, toNotebookResponse(nb))
	}
	return result, nil
}

func (s *notebookService) Create(ctx context.Context, req *dto.CreateNotebookRequest) (*dto.NotebookResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, serverutils.NewBadRequestError("Notebook name is required")
	}

	icon := strings.TrimSpace(req.Icon)
	if icon == "" {
		icon = constant.DefaultNotebookIcon
	}
	if !constant.IsNotebookIcon(icon) {
		return nil, serverutils.NewBadRequestError("Icon is not in the notebook palette")
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = constant.DefaultNotebookColor
	}

	notebook, err := s.notebookRepo.Create(ctx, name, icon, color)
	if err != nil {
		return nil, err
	}

	s.logger.Info("NotebookService", "Notebook created", map[string]interface{}{"notebook_id": notebook.Id})
	s.publisherService.Publish(ctx, events.NotebookCreated, map[string]interface{}{
		"notebook_id": notebook.Id,
		"name":        notebook.Name,
	})

	return toNotebookResponse(notebook), nil
}

func (s *notebookService) Show(ctx context.Context, id string) (*dto.NotebookResponse, error) {
	notebook, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toNotebookResponse(notebook), nil
}

func (s *notebookService) Update(ctx context.Context, req *dto.UpdateNotebookRequest) (*dto.NotebookResponse, error) {
	if _, err := s.find(ctx, req.Id); err != nil {
		return nil, err
	}

	var patch entity.NotebookPatch
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, serverutils.NewBadRequestError("Notebook name is required")
		}
		patch.Name = &name
	}
	if req.Icon != nil {
		if !constant.IsNotebookIcon(*req.Icon) {
			return nil, serverutils.NewBadRequestError("Icon is not in the notebook palette")
		}
		patch.Icon = req.Icon
	}
	if req.Color != nil {
		color := strings.TrimSpace(*req.Color)
		if color == "" {
			color = constant.DefaultNotebookColor
		}
		patch.Color = &color
	}

	if err := s.notebookRepo.Update(ctx, req.Id, patch); err != nil {
		return nil, err
	}

	notebook, err := s.find(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	s.publisherService.Publish(ctx, events.NotebookUpdated, map[string]interface{}{
		"notebook_id": notebook.Id,
		"name":        notebook.Name,
	})
	return toNotebookResponse(notebook), nil
}

// Delete removes the notebook together with its content items and chat history.
func (s *notebookService) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.notebookRepo.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.contentRepo.DeleteByNotebook(ctx, id)
	if err != nil {
		return err
	}
	if err := s.chatRepo.ClearByNotebook(ctx, id); err != nil {
		return err
	}

	s.logger.Info("NotebookService", "Notebook deleted", map[string]interface{}{
		"notebook_id":   id,
		"removed_items": removed,
	})
	s.publisherService.Publish(ctx, events.NotebookDeleted, map[string]interface{}{
		"notebook_id":   id,
		"removed_items": removed,
	})
	return nil
}

func (s *notebookService) find(ctx context.Context, id string) (*entity.Notebook, error) {
	notebook, err := s.notebookRepo.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if notebook == nil {
		return nil, ErrNotebookNotFound
	}
	return notebook, nil
}

func toNotebookResponse(nb *entity.Notebook) *dto.NotebookResponse {
	return &dto.NotebookResponse{
		Id:        nb.Id,
		Name:      nb.Name,
		Icon:      nb.Icon,
		Color:     nb.Color,
		ItemCount: nb.ItemCount,
		CreatedAt: nb.CreatedAt,
		UpdatedAt: nb.UpdatedAt,
	}
}
