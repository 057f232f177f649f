package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/dmitrijs2005/secureshare/internal/server/models"
)

// CertificatePDF renders a one-page A4 certificate. The proof hash is also
// embedded as a QR code so a printed copy can be checked by scanning.
func CertificatePDF(cert *models.DestructionCertificate, verified bool) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Destruction certificate "+cert.ID, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 12, "Certificate of Destruction", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Certificate ID", cert.ID},
		{"Content ID", cert.ContentID},
		{"Reason", string(cert.Reason)},
		{"Destroyed at", cert.DestroyedAt.UTC().Format(time.RFC3339Nano)},
		{"Content type", cert.Metadata.ContentType},
		{"Access mode", string(cert.Metadata.AccessMode)},
		{"Views", fmt.Sprintf("%d", cert.Metadata.ViewsCount)},
		{"Devices", fmt.Sprintf("%d", cert.Metadata.Devices)},
		{"Created at", cert.Metadata.CreatedAt.UTC().Format(time.RFC3339)},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(40, 7, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Courier", "", 8)
	pdf.MultiCell(0, 5, "Proof hash: "+cert.ProofHash, "", "L", false)
	pdf.MultiCell(0, 5, "Signature:  "+cert.Signature, "", "L", false)

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	status := "Signature verified"
	if !verified {
		status = "Signature INVALID"
	}
	pdf.CellFormat(0, 8, status, "", 1, "L", false, 0, "")

	qrPng, err := qrcode.Encode(cert.ProofHash, qrcode.Low, 256)
	if err != nil {
		return nil, err
	}
	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("proof", imgOptions, bytes.NewReader(qrPng))
	pdf.ImageOptions("proof", 150, 230, 40, 40, false, imgOptions, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
