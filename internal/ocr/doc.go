// Package ocr provides Optical Character Recognition using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) to extract
// text from scanned pages. It is the boundary to the text-extraction
// collaborator: the scan pipeline hands it a rectified, enhanced page image
// and receives plain text plus word-level bounding boxes back.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr
//   - macOS: brew install tesseract
//   - Windows: Download from https://github.com/UB-Mannheim/tesseract/wiki
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Supported Languages
//
// The default language is English ("eng"). Other languages can be specified
// using their Tesseract language codes ("deu", "fra", "spa", "chi_sim", ...).
//
// # Performance Considerations
//
// OCR is CPU-intensive. Rectifying and enhancing the page first both shrinks
// the input and markedly improves recognition quality, so run OCR last.
package ocr
