// Package dump streams pages out of a MediaWiki XML export.
package dump

import (
	"compress/bzip2"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// SiteInfo describes the dump's origin wiki.
type SiteInfo struct {
	SiteName  string `xml:"sitename"`
	Base      string `xml:"base"`
	Generator string `xml:"generator"`
}

// Revision is the current revision of a page.
type Revision struct {
	ID        uint64 `xml:"id"`
	Timestamp string `xml:"timestamp"`
	Text      string `xml:"text"`
}

// Page is a single wiki page with its revision text.
type Page struct {
	Title    string   `xml:"title"`
	ID       uint64   `xml:"id"`
	Revision Revision `xml:"revision"`
}

// Reader emits pages from an export in document order.
type Reader struct {
	// SiteInfo is populated once the decoder passes the siteinfo block,
	// if the export carries one.
	SiteInfo SiteInfo

	d *xml.Decoder
}

// NewReader wraps an XML export stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{d: xml.NewDecoder(r)}
}

// Open opens a dump file, transparently decompressing .bz2 exports. The
// returned closer must be closed when reading is done.
func Open(path string) (*Reader, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dump: %w", err)
	}

	var src io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		src = bzip2.NewReader(f)
	}

	return NewReader(src), f, nil
}

// Next returns the next page, or io.EOF once the export is exhausted.
func (r *Reader) Next() (*Page, error) {
	for {
		tok, err := r.d.Token()
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "siteinfo":
			if err := r.d.DecodeElement(&r.SiteInfo, &se); err != nil {
				return nil, fmt.Errorf("decode siteinfo: %w", err)
			}
		case "page":
			page := new(Page)
			if err := r.d.DecodeElement(page, &se); err != nil {
				return nil, fmt.Errorf("decode page: %w", err)
			}
			return page, nil
		}
	}
}
