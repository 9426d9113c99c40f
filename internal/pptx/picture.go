package pptx

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

type mediaPart struct {
	name string
	data []byte
}

type picture struct {
	data   []byte
	ext    string
	width  int
	height int
}

// loadPicture sniffs and decodes image bytes. PNG, JPEG and GIF are kept
// as-is; anything else imaging can decode is re-encoded as PNG.
func loadPicture(data []byte) (*picture, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	mt := mimetype.Detect(data)
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s image: %w", mt.String(), err)
	}
	b := img.Bounds()
	pic := &picture{data: data, width: b.Dx(), height: b.Dy()}

	switch {
	case mt.Is("image/png"):
		pic.ext = "png"
	case mt.Is("image/jpeg"):
		pic.ext = "jpeg"
	case mt.Is("image/gif"):
		pic.ext = "gif"
	default:
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, fmt.Errorf("re-encode %s image: %w", mt.String(), err)
		}
		pic.data = buf.Bytes()
		pic.ext = "png"
	}
	return pic, nil
}

// AddPicture embeds an image. When r has no size the image is placed at its
// native size at 96 DPI.
func (s *Slide) AddPicture(r Rect, data []byte) error {
	pic, err := loadPicture(data)
	if err != nil {
		return err
	}
	if r.W <= 0 || r.H <= 0 {
		r.W = int64(pic.width) * emuPerPixel
		r.H = int64(pic.height) * emuPerPixel
	}
	if err := validRect(r); err != nil {
		return err
	}

	media := &mediaPart{
		name: fmt.Sprintf("image%d.%s", len(s.pres.media)+1, pic.ext),
		data: pic.data,
	}
	s.pres.media = append(s.pres.media, media)
	rid := s.addRel(relImage, "../media/"+media.name)

	id := s.nextID()
	s.shapes = append(s.shapes, pPic{
		NvPicPr: pNvPicPr{
			CNvPr:    pCNvPr{ID: id, Name: fmt.Sprintf("Picture %d", id-1)},
			CNvPicPr: pCNvPicPr{PicLocks: aPicLocks{NoChangeAspect: "1"}},
		},
		BlipFill: pBlipFill{Blip: aBlip{Embed: rid}},
		SpPr: pSpPr{
			Xfrm:     xfrm(r),
			PrstGeom: &aPrstGeom{Prst: "rect"},
		},
	})
	return nil
}
