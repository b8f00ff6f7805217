package dto

// AgreementPackResponse carries the merged agreement pack PDF and the
// deterministic download filename.
type AgreementPackResponse struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}
