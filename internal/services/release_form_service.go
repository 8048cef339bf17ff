package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"piercing-service/internal/database/minio"
	"piercing-service/internal/event"
	"piercing-service/internal/models"
	"piercing-service/internal/repository"
	"piercing-service/internal/rules"
	"piercing-service/utils"

	"github.com/google/uuid"
)

const (
	releaseFormSubmittedMessage = "Release form submitted successfully!"
	adultAge                    = 18
	documentCleanupTimeout      = 10 * time.Second
)

type IReleaseFormService interface {
	SubmitReleaseForm(ctx context.Context, req *models.ReleaseFormRequest) (*models.ReleaseFormResponse, error)
}

type ReleaseFormService struct {
	engine    *rules.Engine
	repo      repository.IClientRepository
	documents DocumentStore
	publisher EventPublisher
	now       func() time.Time
}

// NewReleaseFormService wires the orchestration. publisher may be nil.
func NewReleaseFormService(engine *rules.Engine, repo repository.IClientRepository, documents DocumentStore, publisher EventPublisher) *ReleaseFormService {
	if documents == nil {
		documents = InlineDocumentStore{}
	}
	return &ReleaseFormService{
		engine:    engine,
		repo:      repo,
		documents: documents,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *ReleaseFormService) SubmitReleaseForm(ctx context.Context, req *models.ReleaseFormRequest) (*models.ReleaseFormResponse, error) {
	req = utils.TrimAllStringFields(req).(*models.ReleaseFormRequest)

	pierceDate := s.now().UTC()
	if err := validateReleaseForm(req, pierceDate); err != nil {
		return nil, err
	}

	clientID := uuid.New()
	recordID := uuid.New()
	result := s.engine.Evaluate(req.PiercingType, &pierceDate)

	client := &models.ClientRecord{
		ClientID:        clientID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           utils.NormalizePhone(req.Phone),
		DateOfBirth:     req.DateOfBirth,
		PiercingType:    req.PiercingType,
		JewelryChoice:   req.JewelryChoice,
		IsMinor:         req.IsMinor,
		ParentFirstName: req.ParentFirstName,
		ParentLastName:  req.ParentLastName,
		ParentEmail:     req.ParentEmail,
		AgreedTerms:     req.AgreedTerms,
		CreatedAt:       pierceDate,
	}
	if req.ParentPhone != nil {
		normalized := utils.NormalizePhone(*req.ParentPhone)
		client.ParentPhone = &normalized
	}

	stored, err := s.storeDocuments(ctx, req, client)
	if err != nil {
		return nil, err
	}

	piercing := &models.PiercingRecord{
		RecordID:        recordID,
		ClientID:        clientID,
		PiercingType:    req.PiercingType,
		Category:        string(result.Category),
		Price:           result.Price,
		DatePierced:     pierceDate,
		DownsizeDueDate: result.DownsizeDueDate,
	}

	if err := s.repo.CreateClientWithPiercing(ctx, client, piercing); err != nil {
		s.removeDocuments(ctx, stored)
		return nil, fmt.Errorf("failed to save release form: %w", err)
	}

	slog.Info("Release form recorded",
		"client_id", clientID,
		"record_id", recordID,
		"piercing_type", req.PiercingType,
		"category", result.Category,
		"price", result.Price.String(),
	)

	s.publish(ctx, event.PiercingEvent{
		ID:           uuid.NewString(),
		EventType:    event.PiercingRecorded,
		ClientID:     clientID.String(),
		RecordID:     recordID.String(),
		PiercingType: req.PiercingType,
		OccurredAt:   pierceDate,
		Additional: map[string]any{
			"price":             result.Price.String(),
			"category":          result.Category,
			"downsize_due_date": result.DownsizeDueDate,
		},
	})

	return &models.ReleaseFormResponse{
		ClientID:        clientID.String(),
		RecordID:        recordID.String(),
		Pricing:         result.Price.StringFixed(2),
		DownsizeDueDate: result.DownsizeDueDate,
		Message:         releaseFormSubmittedMessage,
	}, nil
}

type documentRef struct {
	bucketName string
	objectName string
}

type documentUpload struct {
	label    string
	ref      documentRef
	document string
	assign   func(url string)
}

func releaseDocuments(req *models.ReleaseFormRequest, client *models.ClientRecord) []documentUpload {
	prefix := client.ClientID.String()
	uploads := []documentUpload{
		{"signature", documentRef{minio.Storage.Signatures, prefix + "/client"}, req.Signature,
			func(url string) { client.SignatureURL = url }},
		{"id photo", documentRef{minio.Storage.IDPhotos, prefix + "/client"}, req.IDPhoto,
			func(url string) { client.IDPhotoURL = url }},
	}
	if !req.IsMinor {
		return uploads
	}
	return append(uploads,
		documentUpload{"parent signature", documentRef{minio.Storage.Signatures, prefix + "/parent"}, *req.ParentSignature,
			func(url string) { client.ParentSignatureURL = &url }},
		documentUpload{"parent id photo", documentRef{minio.Storage.IDPhotos, prefix + "/parent"}, *req.ParentIDPhoto,
			func(url string) { client.ParentIDPhotoURL = &url }},
	)
}

// storeDocuments uploads every document of the form. On failure the ones
// already uploaded are removed again.
func (s *ReleaseFormService) storeDocuments(ctx context.Context, req *models.ReleaseFormRequest, client *models.ClientRecord) ([]documentRef, error) {
	uploads := releaseDocuments(req, client)
	stored := make([]documentRef, 0, len(uploads))
	for _, upload := range uploads {
		url, err := s.documents.StoreDocument(ctx, upload.ref.bucketName, upload.ref.objectName, upload.document)
		if err != nil {
			s.removeDocuments(ctx, stored)
			return nil, fmt.Errorf("failed to store %s: %w", upload.label, err)
		}
		upload.assign(url)
		stored = append(stored, upload.ref)
	}
	return stored, nil
}

func (s *ReleaseFormService) removeDocuments(ctx context.Context, refs []documentRef) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), documentCleanupTimeout)
	defer cancel()
	for _, ref := range refs {
		if err := s.documents.RemoveDocument(ctx, ref.bucketName, ref.objectName); err != nil {
			slog.Error("Failed to remove release document",
				"bucket", ref.bucketName, "object", ref.objectName, "error", err)
		}
	}
}

// publish is best effort: the records are already saved.
func (s *ReleaseFormService) publish(ctx context.Context, evt event.PiercingEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, evt); err != nil {
		slog.Warn("Failed to publish piercing event", "event_type", evt.EventType, "error", err)
	}
}

func validateReleaseForm(req *models.ReleaseFormRequest, now time.Time) error {
	var errs ValidationErrors

	if !req.AgreedTerms {
		errs.add("agreed_terms", "terms must be accepted")
	}
	if _, err := utils.ValidateEmail(req.Email); err != nil {
		errs.add("email", "email format incorrect")
	}
	if _, err := utils.ValidatePhone(req.Phone); err != nil {
		errs.add("phone", err.Error())
	}
	if dob, err := utils.ValidateDateOfBirth(req.DateOfBirth, now); err != nil {
		errs.add("date_of_birth", err.Error())
	} else if minor := utils.AgeOn(dob, now) < adultAge; minor != req.IsMinor {
		if minor {
			errs.add("is_minor", "client is under 18 on the date of birth given")
		} else {
			errs.add("is_minor", "client is 18 or older on the date of birth given")
		}
	}

	validateDocument(&errs, "signature", req.Signature)
	validateDocument(&errs, "id_photo", req.IDPhoto)

	if req.IsMinor {
		requireField(&errs, "parent_first_name", req.ParentFirstName)
		requireField(&errs, "parent_last_name", req.ParentLastName)
		if requireField(&errs, "parent_signature", req.ParentSignature) {
			validateDocument(&errs, "parent_signature", *req.ParentSignature)
		}
		if requireField(&errs, "parent_id_photo", req.ParentIDPhoto) {
			validateDocument(&errs, "parent_id_photo", *req.ParentIDPhoto)
		}
		if requireField(&errs, "parent_phone", req.ParentPhone) {
			if _, err := utils.ValidatePhone(*req.ParentPhone); err != nil {
				errs.add("parent_phone", err.Error())
			}
		}
	}

	return errs.orNil()
}

func requireField(errs *ValidationErrors, field string, value *string) bool {
	if value == nil || *value == "" {
		errs.add(field, "required when the client is a minor")
		return false
	}
	return true
}

func validateDocument(errs *ValidationErrors, field, document string) {
	if _, _, err := minio.DecodeDocument(document); err != nil {
		errs.add(field, err.Error())
	}
}
