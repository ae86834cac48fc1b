package service

import (
	"context"
	"errors"
	"io"
	"time"

	"ucoportal/internal/model"
	"ucoportal/internal/repository"
	"ucoportal/internal/storage"
)

// DocumentUpload is one incoming file of a multi-document upload.
type DocumentUpload struct {
	Type        string
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FBOService covers FBO enrollment and administration.
type FBOService interface {
	Enroll(ctx context.Context, in model.FBOCreate, by *model.User) (*model.FBO, error)
	Get(ctx context.Context, fboID string) (*model.FBO, error)
	List(ctx context.Context, f repository.FBOFilter, page, limit int) (*model.Paginated[model.FBO], error)
	// ListAssigned returns every FBO assigned to a collector, unpaged.
	ListAssigned(ctx context.Context, f repository.FBOFilter) ([]model.FBO, error)
	Update(ctx context.Context, fboID string, fields map[string]any, by *model.User) error
	UpdateStatus(ctx context.Context, fboID string, status model.Status) error
	AssignCollectors(ctx context.Context, fboID string, collectorIDs []string) error
	Delete(ctx context.Context, fboID string) error
	UploadDocuments(ctx context.Context, fboID string, uploads []DocumentUpload) ([]model.FBODocument, error)
}

type fboService struct {
	fbos  repository.FBORepository
	users repository.UserRepository
	store storage.Storage
}

func NewFBOService(fbos repository.FBORepository, users repository.UserRepository, store storage.Storage) FBOService {
	return &fboService{fbos: fbos, users: users, store: store}
}

func (s *fboService) Enroll(ctx context.Context, in model.FBOCreate, by *model.User) (*model.FBO, error) {
	exists, err := s.fbos.ActiveNameExists(ctx, in.BusinessName, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflict("FBO with this name already exists")
	}

	status := in.Status
	if status == "" {
		status = model.StatusPending
	}
	docs := in.Documents
	if docs == nil {
		docs = []model.FBODocument{}
	}

	now := time.Now().UTC()
	fbo := &model.FBO{
		FBOID:           newID("FBO"),
		BusinessName:    in.BusinessName,
		ContactPerson:   in.ContactPerson,
		Address:         in.Address,
		BusinessDetails: in.BusinessDetails,
		OilDetails:      in.OilDetails,
		BankDetails:     in.BankDetails,
		Documents:       docs,
		EnrollmentDetails: model.FBOEnrollmentDetails{
			EnrolledBy:     by.UserID,
			EnrolledByName: by.Name,
			EnrolledByRole: by.Role,
			EnrolledAt:     now,
			Status:         status,
		},
		AssignedCollectors: []string{},
		Status:             status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.fbos.Create(ctx, fbo); err != nil {
		return nil, err
	}
	return fbo, nil
}

func (s *fboService) Get(ctx context.Context, fboID string) (*model.FBO, error) {
	fbo, err := s.fbos.FindByID(ctx, fboID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NotFound("FBO not found")
		}
		return nil, err
	}
	return fbo, nil
}

func (s *fboService) List(ctx context.Context, f repository.FBOFilter, page, limit int) (*model.Paginated[model.FBO], error) {
	res, err := s.fbos.List(ctx, f, pageQuery(page, limit))
	if err != nil {
		return nil, err
	}
	return &model.Paginated[model.FBO]{
		Data:       res.Items,
		Pagination: model.NewPagination(page, limit, res.Total),
	}, nil
}

func (s *fboService) ListAssigned(ctx context.Context, f repository.FBOFilter) ([]model.FBO, error) {
	res, err := s.fbos.List(ctx, f, repository.PageQuery{})
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

// Update applies arbitrary field changes. Non-admin callers may only touch
// FBOs they enrolled.
func (s *fboService) Update(ctx context.Context, fboID string, fields map[string]any, by *model.User) error {
	fbo, err := s.Get(ctx, fboID)
	if err != nil {
		return err
	}
	if by != nil && by.Role != model.RoleAdmin && fbo.EnrollmentDetails.EnrolledBy != by.UserID {
		return Forbidden("Not authorized to update this FBO")
	}
	delete(fields, "fboId")
	fields["updatedAt"] = time.Now().UTC()
	return s.fbos.Update(ctx, fboID, fields)
}

func (s *fboService) UpdateStatus(ctx context.Context, fboID string, status model.Status) error {
	if status == "" {
		return BadRequest("Status required")
	}
	err := s.fbos.Update(ctx, fboID, map[string]any{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("FBO not found")
	}
	return err
}

func (s *fboService) AssignCollectors(ctx context.Context, fboID string, collectorIDs []string) error {
	if collectorIDs == nil {
		return BadRequest("Collector IDs required")
	}
	if len(collectorIDs) > 0 {
		collectors, err := s.users.FindByUserIDs(ctx, collectorIDs)
		if err != nil {
			return err
		}
		valid := make(map[string]bool, len(collectors))
		for _, u := range collectors {
			if u.Role == model.RoleCollectionTeam {
				valid[u.UserID] = true
			}
		}
		for _, id := range collectorIDs {
			if !valid[id] {
				return BadRequest("Invalid collector ID: " + id)
			}
		}
	}
	err := s.fbos.Update(ctx, fboID, map[string]any{
		"assignedCollectors": collectorIDs,
		"updatedAt":          time.Now().UTC(),
	})
	if errors.Is(err, repository.ErrNotFound) {
		return NotFound("FBO not found")
	}
	return err
}

func (s *fboService) Delete(ctx context.Context, fboID string) error {
	if err := s.fbos.Delete(ctx, fboID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NotFound("FBO not found")
		}
		return err
	}
	return nil
}

func (s *fboService) UploadDocuments(ctx context.Context, fboID string, uploads []DocumentUpload) ([]model.FBODocument, error) {
	if _, err := s.Get(ctx, fboID); err != nil {
		return nil, err
	}
	docs := make([]model.FBODocument, 0, len(uploads))
	for _, up := range uploads {
		key := storage.ObjectKey("documents", fboID, up.Filename)
		info, err := s.store.Put(ctx, key, up.Content, storage.PutObjectOptions{
			Size:        up.Size,
			ContentType: up.ContentType,
			Metadata:    map[string]string{"document-type": up.Type},
		})
		if err != nil {
			return nil, err
		}
		url, err := s.store.PresignGet(ctx, info.Key, 7*24*time.Hour)
		if err != nil {
			return nil, err
		}
		doc := model.FBODocument{Type: up.Type, URL: url, UploadedAt: time.Now().UTC()}
		if err := s.fbos.PushDocument(ctx, fboID, doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
