package model

// Severity is the coarse impact tier a collector assigns to an evidence item.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// IsValid reports whether s is one of the known tiers.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

func (s Severity) String() string {
	return string(s)
}

// EvidenceType tags the JavaScript behaviour the collector observed.
type EvidenceType string

const (
	TypeEvalCall            EvidenceType = "eval-call"
	TypeFunctionConstructor EvidenceType = "function-constructor"
	TypeJavascriptProtocol  EvidenceType = "javascript-protocol"
	TypeSetTimeoutString    EvidenceType = "settimeout-string"
	TypeSetIntervalString   EvidenceType = "setinterval-string"
	TypeDocumentWrite       EvidenceType = "document-write"
	TypeInnerHTMLSet        EvidenceType = "innerhtml-set"
	TypeOuterHTMLSet        EvidenceType = "outerhtml-set"
	TypeInsertAdjacentHTML  EvidenceType = "insertadjacenthtml"
	TypeInlineEventHandler  EvidenceType = "inline-event-handler"
	TypeInlineScript        EvidenceType = "inline-script"
)

func (t EvidenceType) String() string {
	return string(t)
}

// Category groups evidence types that share an explanation and a remediation.
type Category string

const (
	CategoryDynamicCode        Category = "dynamic-code-execution"
	CategoryProtocolURL        Category = "protocol-url-injection"
	CategoryTimerString        Category = "timer-string"
	CategoryDirectMarkupWrite  Category = "direct-markup-write"
	CategoryMarkupPropertySet  Category = "markup-property-set"
	CategoryInlineEventHandler Category = "inline-event-handler"
	CategoryInlineScript       Category = "inline-script"
	CategoryUnknown            Category = "unknown"
)

// Category returns the family t belongs to, or CategoryUnknown.
func (t EvidenceType) Category() Category {
	switch t {
	case TypeEvalCall, TypeFunctionConstructor:
		return CategoryDynamicCode
	case TypeJavascriptProtocol:
		return CategoryProtocolURL
	case TypeSetTimeoutString, TypeSetIntervalString:
		return CategoryTimerString
	case TypeDocumentWrite:
		return CategoryDirectMarkupWrite
	case TypeInnerHTMLSet, TypeOuterHTMLSet, TypeInsertAdjacentHTML:
		return CategoryMarkupPropertySet
	case TypeInlineEventHandler:
		return CategoryInlineEventHandler
	case TypeInlineScript:
		return CategoryInlineScript
	default:
		return CategoryUnknown
	}
}

// Evidence is one suspicious JavaScript behaviour captured by the collector.
// Only Type and Severity take part in scoring; the rest is passed through.
type Evidence struct {
	// ID and Time are opaque collector metadata.
	ID   int    `json:"id"`
	Time string `json:"time"`

	Type     EvidenceType `json:"type"`
	Severity Severity     `json:"severity"`

	// Location is whatever the collector recorded about where the behaviour
	// happened (script URL, line, element path...).
	Location map[string]any `json:"location"`

	Snippet string  `json:"snippet"`
	Stack   *string `json:"stack,omitempty"`
}
