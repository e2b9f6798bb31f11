package capability

import (
	"fmt"
	"strings"

	"github.com/FuriLabs/obex-capabilities/internal/model"
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// NetworkInfoLabel tags the modem block appended to General.
const NetworkInfoLabel = "NetworkInfo"

// XMLRenderer fills Template with device and modem data.
type XMLRenderer struct {
	Indent int // spaces per nesting level
}

func (r *XMLRenderer) indent() int {
	if r.Indent <= 0 {
		return 1
	}
	return r.Indent
}

// Render returns the root element serialized without the prolog and
// without a trailing newline.
func (r *XMLRenderer) Render(device model.Device, modem *model.Modem) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(Template); err != nil {
		return "", errors.Wrap(err, "parsing capability template")
	}

	root := doc.Root()
	general := root.FindElement("./General")
	if general == nil {
		return "", errors.New("capability template has no General element")
	}

	for _, field := range []struct{ tag, text string }{
		{"Manufacturer", device.Manufacturer},
		{"Model", device.Model},
		{"SN", device.UniqueID},
	} {
		el, err := child(general, field.tag)
		if err != nil {
			return "", err
		}
		el.SetText(field.text)
	}

	sw, err := child(general, "SW")
	if err != nil {
		return "", err
	}
	sw.CreateAttr("version", device.SoftwareVersion)

	osElem, err := child(general, "OS")
	if err != nil {
		return "", err
	}
	osElem.CreateAttr("version", device.OSVersion)
	osElem.CreateAttr("id", device.Codename)

	if modem != nil {
		appendNetworkInfo(general, modem)
	}

	out := etree.NewDocument()
	out.SetRoot(root)
	out.Indent(r.indent())

	s, err := out.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, "serializing capabilities")
	}
	return strings.TrimRight(s, "\n"), nil
}

func child(parent *etree.Element, tag string) (*etree.Element, error) {
	el := parent.SelectElement(tag)
	if el == nil {
		return nil, errors.Errorf("capability template has no %s/%s element", parent.Tag, tag)
	}
	return el, nil
}

func appendNetworkInfo(general *etree.Element, modem *model.Modem) {
	ext := general.CreateElement("Ext")
	ext.CreateElement("XNam").SetText(NetworkInfoLabel)
	ext.CreateElement("XVal").SetText(fmt.Sprintf("CurrentNetwork=%s", modem.Network))
	ext.CreateElement("XVal").SetText(fmt.Sprintf("CountryCode=%s", modem.MCC))
	ext.CreateElement("XVal").SetText(fmt.Sprintf("NetworkID=%s", modem.MNC))
}
