package document

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

// ErrDocumentIsNotConstructed is returned when a Document instance was not
// created through the NewDocument or RestoreDocument factory functions.
var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument or RestoreDocument")

// Document binds a stored file to exactly one order.
//
// Invariants:
//   - The owning order must exist (checked by the upload use case)
//   - The storage key always refers to bytes that were written before the
//     record was created; deletion removes the bytes before the record
type Document struct {
	id          kernel.UUID
	orderID     kernel.UUID
	filename    string
	storageKey  string
	contentType string
	status      Status
	uploadedAt  time.Time

	guard guard.ConstructorGuard
}

// NewDocument creates a Document in Uploaded status. The storage key must
// already refer to successfully written bytes.
func NewDocument(id, orderID kernel.UUID, filename, storageKey, contentType string) (*Document, error) {
	d := &Document{
		status:     Uploaded,
		uploadedAt: time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setFilename(filename),
		d.setStorageKey(storageKey),
	); err != nil {
		return nil, err
	}

	d.contentType = contentType
	return d, nil
}

// RestoreDocument reconstructs a Document from persistence.
func RestoreDocument(
	id, orderID kernel.UUID,
	filename, storageKey, contentType string,
	status Status,
	uploadedAt time.Time,
) (*Document, error) {
	d := &Document{
		uploadedAt: uploadedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setFilename(filename),
		d.setStorageKey(storageKey),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	d.contentType = contentType
	return d, nil
}

// Validate ensures the Document was created through a factory function.
func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

// IsEqual compares two documents by identifier.
func (d *Document) IsEqual(other *Document) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the document's unique identifier.
func (d *Document) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the owning order.
func (d *Document) OrderID() kernel.UUID {
	return d.orderID
}

// Filename returns the original upload filename.
func (d *Document) Filename() string {
	return d.filename
}

// StorageKey returns the locator of the backing bytes in the file store.
func (d *Document) StorageKey() string {
	return d.storageKey
}

// ContentType returns the MIME type recorded at upload.
func (d *Document) ContentType() string {
	return d.contentType
}

// Status returns the document's pipeline status.
func (d *Document) Status() Status {
	return d.status
}

// UploadedAt returns the upload timestamp.
func (d *Document) UploadedAt() time.Time {
	return d.uploadedAt
}

// MarkProcessing flags the document as part of a running analysis.
func (d *Document) MarkProcessing() {
	d.status = Processing
}

// MarkAnalyzed flags the document as consumed by a completed analysis.
func (d *Document) MarkAnalyzed() {
	d.status = Analyzed
}

// MarkFailed flags the document after a failed analysis.
func (d *Document) MarkFailed() {
	d.status = Failed
}

func (d *Document) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Document) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Document) setFilename(filename string) error {
	if filename == "" {
		return errs.NewValueIsRequiredError("filename")
	}
	d.filename = filename
	return nil
}

func (d *Document) setStorageKey(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("storage key")
	}
	d.storageKey = key
	return nil
}

func (d *Document) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
