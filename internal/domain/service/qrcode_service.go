package service

// QRCodeGenerator renders a payload into a PNG QR code. Used to produce a
// scannable image for deposit checkout links.
type QRCodeGenerator interface {
	GeneratePNG(content string) ([]byte, error)
}
