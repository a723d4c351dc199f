package model

// Document types required for a tenant to be considered compliant.
const (
	DocAgreement          = "agreement"
	DocIDProof            = "id_proof"
	DocPoliceVerification = "police_verification"
)

// RequiredDocTypes lists the document types a tenant must have on file, one
// of each, to count as compliant in reporting views.
var RequiredDocTypes = []string{DocAgreement, DocIDProof, DocPoliceVerification}

// Document describes a file stored in the uploads directory. Filename is the
// generated on-disk name (unique), Original the name the client uploaded.
// Deleting a document also removes the stored file.
//
// Fields:
//  ID          – unique identifier (uuid).
//  AccountID   – owning account; stamped at creation, immutable.
//  Filename    – generated on-disk filename.
//  Original    – client-supplied filename.
//  TenantID    – tenant the document belongs to (may be dangling).
//  PropertyID  – related property (may be dangling).
//  DocType     – agreement, id_proof, police_verification or free form.
//  Description – optional note.
//  UploadedAt  – RFC 3339 upload timestamp.
type Document struct {
	ID          string `json:"id"`
	AccountID   string `json:"userId"`
	Filename    string `json:"filename"`
	Original    string `json:"original"`
	TenantID    string `json:"tenantId"`
	PropertyID  string `json:"propertyId"`
	DocType     string `json:"docType"`
	Description string `json:"description"`
	UploadedAt  string `json:"uploadedAt"`
}
