package chromedp

import (
	"context"
	"fmt"

	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

type element struct {
	session *session
	id      cdp.NodeID
}

var _ ports.Element = (*element)(nil)

func (e *element) ids() []cdp.NodeID {
	return []cdp.NodeID{e.id}
}

func (e *element) Attribute(ctx context.Context, name string) (string, error) {
	var value string
	var ok bool
	if err := e.session.run(ctx, chromedp.AttributeValue(e.ids(), name, &value, &ok, chromedp.ByNodeID)); err != nil {
		return "", fmt.Errorf("read attribute %s: %w", name, err)
	}
	return value, nil
}

// Visible reports whether the node has a rendered, non-empty box.
func (e *element) Visible(ctx context.Context) (bool, error) {
	var visible bool
	err := e.session.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		box, err := dom.GetBoxModel().WithNodeID(e.id).Do(ctx)
		if err != nil {
			// Nodes without layout (display:none) have no box model.
			return nil
		}
		visible = box.Width > 0 && box.Height > 0
		return nil
	}))
	if err != nil {
		return false, fmt.Errorf("check visibility: %w", err)
	}
	return visible, nil
}

func (e *element) Value(ctx context.Context) (string, error) {
	var value string
	if err := e.session.run(ctx, chromedp.Value(e.ids(), &value, chromedp.ByNodeID)); err != nil {
		return "", fmt.Errorf("read value: %w", err)
	}
	return value, nil
}

func (e *element) Clear(ctx context.Context) error {
	if err := e.session.run(ctx, chromedp.Clear(e.ids(), chromedp.ByNodeID)); err != nil {
		return fmt.Errorf("clear field: %w", err)
	}
	return nil
}

func (e *element) Type(ctx context.Context, text string) error {
	if err := e.session.run(ctx, chromedp.SendKeys(e.ids(), text, chromedp.ByNodeID)); err != nil {
		return fmt.Errorf("type into field: %w", err)
	}
	return nil
}

func (e *element) PressEnter(ctx context.Context) error {
	if err := e.session.run(ctx, chromedp.SendKeys(e.ids(), kb.Enter, chromedp.ByNodeID)); err != nil {
		return fmt.Errorf("press enter: %w", err)
	}
	return nil
}
