package sideswipe

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/constants"
	"github.com/BrandonKowalski/sideswipe/pkg/sideswipe/internal"
)

// Render draws the revealed action buttons for the current frame. The host
// draws its own row content translated by Offset(); this only paints the
// action group the offset uncovers. Buttons slide with the reveal, splitting
// the uncovered width equally in insertion order.
func (r *Row) Render(renderer *sdl.Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offset := r.tracker.Offset()
	switch {
	case offset > 0.5:
		r.renderGroup(renderer, r.left, offset, true)
	case offset < -0.5:
		r.renderGroup(renderer, r.right, -offset, false)
	}
}

func (r *Row) renderGroup(renderer *sdl.Renderer, buttons []*ActionButton, revealed float32, fromLeft bool) {
	if len(buttons) == 0 {
		return
	}

	extent := float32(int32(len(buttons)) * r.settings.actionWidth)
	if revealed > extent {
		revealed = extent
	}
	width := int32(revealed) / int32(len(buttons))
	if width <= 0 {
		return
	}

	for i, b := range buttons {
		var x int32
		if fromLeft {
			x = r.bounds.X + int32(i)*width
		} else {
			x = r.bounds.X + r.bounds.W - int32(revealed) + int32(i)*width
		}
		rect := sdl.Rect{X: x, Y: r.bounds.Y, W: width, H: r.bounds.H}
		r.renderButton(renderer, b, rect)
	}
}

func (r *Row) renderButton(renderer *sdl.Renderer, b *ActionButton, rect sdl.Rect) {
	resolved := b.Resolved()
	fill := resolved.Color.Concrete()

	_ = renderer.SetDrawColor(fill.R, fill.G, fill.B, fill.A)
	_ = renderer.FillRect(&rect)

	pad := internal.UniformPadding(constants.ButtonPadding)
	content := sdl.Rect{
		X: rect.X + pad.Left,
		Y: rect.Y + pad.Top,
		W: rect.W - pad.Left - pad.Right,
		H: rect.H - pad.Top - pad.Bottom,
	}
	if content.W <= 0 || content.H <= 0 {
		return
	}

	icon := r.iconTexture(renderer, resolved.Icon)
	label := r.labelTexture(renderer, resolved.Label)

	var iconRect, labelRect sdl.Rect
	contentH := int32(0)
	if icon != nil {
		_, _, w, h, _ := icon.Query()
		iconRect = sdl.Rect{W: w, H: h}
		contentH += h
	}
	if label != nil {
		_, _, w, h, _ := label.Query()
		labelRect = sdl.Rect{W: w, H: h}
		if contentH > 0 {
			contentH += constants.LabelIconGap
		}
		contentH += h
	}
	if contentH == 0 {
		return
	}

	y := content.Y + (content.H-contentH)/2
	if icon != nil {
		iconRect.X = content.X + (content.W-iconRect.W)/2
		iconRect.Y = y
		if iconRect.W <= content.W {
			_ = renderer.Copy(icon, nil, &iconRect)
		}
		y += iconRect.H + constants.LabelIconGap
	}
	if label != nil {
		labelRect.X = content.X + (content.W-labelRect.W)/2
		labelRect.Y = y
		// Labels are clipped out rather than squeezed when the button is
		// narrower than the text.
		if labelRect.W <= content.W {
			_ = renderer.Copy(label, nil, &labelRect)
		}
	}
}

// iconTexture renders the icon once and serves it from the cache afterwards.
// Glyph icons come from the icon font, SVG icons are rasterized and tinted
// white to sit on the role color fill.
func (r *Row) iconTexture(renderer *sdl.Renderer, icon IconRef) *sdl.Texture {
	if icon.IsZero() {
		return nil
	}

	if icon.SVGPath != "" {
		key := fmt.Sprintf("svg:%s", icon.SVGPath)
		return r.cache.GetOrCreate(key, func() *sdl.Texture {
			img, err := internal.RasterizeSVG(icon.SVGPath, constants.DefaultIconSize)
			if err != nil {
				internal.GetLogger().Error("failed to rasterize action icon",
					"path", icon.SVGPath, "error", err)
				return nil
			}
			texture, err := internal.TextureFromRGBA(renderer, img)
			if err != nil {
				internal.GetLogger().Error("failed to upload action icon",
					"path", icon.SVGPath, "error", err)
				return nil
			}
			return texture
		})
	}

	fonts := internal.Fonts()
	if fonts.Icon == nil {
		return nil
	}
	key := fmt.Sprintf("glyph:%s", icon.Glyph)
	return r.cache.GetOrCreate(key, func() *sdl.Texture {
		return renderText(renderer, fonts.Icon, icon.Glyph)
	})
}

func (r *Row) labelTexture(renderer *sdl.Renderer, label string) *sdl.Texture {
	if label == "" {
		return nil
	}
	fonts := internal.Fonts()
	if fonts.Label == nil {
		return nil
	}
	key := fmt.Sprintf("label:%s", label)
	return r.cache.GetOrCreate(key, func() *sdl.Texture {
		return renderText(renderer, fonts.Label, label)
	})
}

func renderText(renderer *sdl.Renderer, font *ttf.Font, text string) *sdl.Texture {
	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: 255, G: 255, B: 255, A: 255})
	if err != nil {
		internal.GetLogger().Error("failed to render action text", "text", text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetLogger().Error("failed to upload action text", "text", text, "error", err)
		return nil
	}
	return texture
}

// Destroy releases the row's cached textures. Call it when the row leaves
// the screen for good.
func (r *Row) Destroy() {
	r.mu.Lock()
	r.cache.Destroy()
	r.mu.Unlock()
}
