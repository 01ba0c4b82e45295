package contract

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Schema selects the flat persistence projection of a paper state. Only
// SchemaV1 is supported; any other selector fails with ErrUnrecognizedSchema.
type Schema string

// SchemaV1 is the first (and currently only) persistence projection schema.
const SchemaV1 Schema = "commercial_paper_v1"

// PaperRecordV1 is the flat, queryable projection of a PaperState for the
// persistence collaborator. It is a one-way mapping: records never flow back
// into validation.
type PaperRecordV1 struct {
	IssuerKey          PublicKey `json:"issuer_key"`
	IssuanceRef        Reference `json:"issuance_ref"`
	OwnerKey           PublicKey `json:"owner_key"`
	MaturityDate       time.Time `json:"maturity_date"`
	FaceValueQuantity  int64     `json:"face_value_quantity"`
	Currency           string    `json:"currency"`
	FaceValueIssuerKey PublicKey `json:"face_value_issuer_key"`
	FaceValueIssuerRef Reference `json:"face_value_issuer_ref"`
}

// ProjectToSchema maps a state onto the requested persistence schema.
// Returns a rejection of kind ErrSchema for unsupported schemas.
func ProjectToSchema(state PaperState, schema Schema) (PaperRecordV1, error) {
	if schema != SchemaV1 {
		return PaperRecordV1{}, reject(ErrSchema, ErrUnrecognizedSchema)
	}

	return PaperRecordV1{
		IssuerKey:          state.Issuance.Party.OwningKey,
		IssuanceRef:        state.Issuance.Reference,
		OwnerKey:           state.Owner.OwningKey,
		MaturityDate:       state.MaturityDate,
		FaceValueQuantity:  state.FaceValue.Quantity,
		Currency:           state.FaceValue.Currency,
		FaceValueIssuerKey: state.FaceValue.Issuer.Party.OwningKey,
		FaceValueIssuerRef: state.FaceValue.Issuer.Reference,
	}, nil
}

// ToJSON serializes the record for storage in a jsonb details column.
func (r PaperRecordV1) ToJSON() ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(r)
}

// PaperRecordV1FromJSON deserializes a record previously produced by ToJSON.
func PaperRecordV1FromJSON(data []byte) (PaperRecordV1, error) {
	var record PaperRecordV1
	if err := jsoniter.ConfigFastest.Unmarshal(data, &record); err != nil {
		return PaperRecordV1{}, err
	}

	return record, nil
}
