package workflow

// Status is a lifecycle state of a document. The set of valid statuses is
// defined per document type by its transition table, not globally.
type Status string

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// DocumentType identifies one kind of cooperation document
type DocumentType string

// Document types governed by the engine
const (
	TypeVisa        = DocumentType("VISA")
	TypeMOU         = DocumentType("MOU")
	TypeVisitor     = DocumentType("VISITOR")
	TypeTranslation = DocumentType("TRANSLATION")
)

var typeResources = map[DocumentType]string{
	TypeVisa:        "visa",
	TypeMOU:         "mou",
	TypeVisitor:     "visitor",
	TypeTranslation: "translation",
}

// IsValid returns true if the type is one of the governed document types
func (t DocumentType) IsValid() bool {
	_, ok := typeResources[t]
	return ok
}

// String returns the string representation of the type
func (t DocumentType) String() string {
	return string(t)
}

// Resource returns the permission resource name for the type, or "" for an
// unknown type
func (t DocumentType) Resource() string {
	return typeResources[t]
}
