package form

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/lvillar/dqfile/reader"
)

// SignatureSuffix ends the name of every typed-name signature field.
const SignatureSuffix = "_signature"

// Signature is the state of one signature field.
type Signature struct {
	Name   string `json:"name"`
	Page   int    `json:"page"`
	Signed bool   `json:"signed"`
	Signer string `json:"signer,omitempty"`
	// Digital is set for /Sig fields carrying a signature dictionary.
	Digital  bool      `json:"digital,omitempty"`
	SignedAt time.Time `json:"signedAt"`
	// Covered reports that the byte range spans the whole file except the
	// /Contents hole, so nothing was appended after signing.
	Covered bool     `json:"covered,omitempty"`
	Digest  string   `json:"digest,omitempty"` // hex SHA-256 of the byte range
	Errors  []string `json:"errors,omitempty"`
}

// Signatures lists the signature fields of pdf in document order. Typed-name
// fields count as signed when their value is not blank; digital /Sig fields
// when their value is a signature dictionary.
func Signatures(pdf []byte) ([]Signature, error) {
	doc, err := reader.Parse(pdf)
	if err != nil {
		return nil, fmt.Errorf("form: reading PDF: %w", err)
	}
	tree, err := doc.FormFields()
	if err != nil {
		return nil, fmt.Errorf("form: reading fields: %w", err)
	}
	var out []Signature
	for _, f := range reader.Leaves(tree) {
		switch {
		case f.Type == "Sig":
			out = append(out, digitalSignature(doc, f, pdf))
		case f.Type == "Tx" && strings.HasSuffix(f.FullName, SignatureSuffix):
			v := strings.TrimSpace(f.Value)
			out = append(out, Signature{Name: f.FullName, Page: f.Page, Signed: v != "", Signer: v})
		}
	}
	return out, nil
}

func digitalSignature(doc *reader.Document, f *reader.FormField, pdf []byte) Signature {
	s := Signature{Name: f.FullName, Page: f.Page}
	v := resolveDict(doc, f.Dict()["V"])
	if len(v) == 0 {
		return s
	}
	s.Signed, s.Digital = true, true
	s.Signer = v.GetString("Name")
	s.SignedAt = pdfDate(v.GetString("M"))

	arr := resolveArray(doc, v["ByteRange"])
	if len(arr) != 4 {
		s.Errors = append(s.Errors, "missing byte range")
		return s
	}
	var br [4]int
	for i, o := range arr {
		n, ok := o.(reader.Integer)
		if !ok || n < 0 {
			s.Errors = append(s.Errors, "invalid byte range")
			return s
		}
		br[i] = int(n)
	}
	if br[0]+br[1] > len(pdf) || br[2]+br[3] > len(pdf) {
		s.Errors = append(s.Errors, "byte range exceeds file length")
		return s
	}
	h := sha256.New()
	h.Write(pdf[br[0] : br[0]+br[1]])
	h.Write(pdf[br[2] : br[2]+br[3]])
	s.Digest = hex.EncodeToString(h.Sum(nil))
	s.Covered = br[0] == 0 && br[1] < br[2] && br[2]+br[3] == len(pdf)
	if !s.Covered {
		s.Errors = append(s.Errors, "document was modified after signing")
	}
	return s
}

var pdfDateLayouts = []string{
	"20060102150405-07'00'",
	"20060102150405Z07'00'",
	"20060102150405Z",
	"20060102150405",
}

// pdfDate parses a date string of the form D:YYYYMMDDHHmmSS+HH'mm'.
func pdfDate(s string) time.Time {
	s = strings.TrimPrefix(s, "D:")
	for _, l := range pdfDateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
