//go:build windows

package sensors

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// SystemModel retrieves the machine vendor and model from WMI
// (Win32_ComputerSystem) via raw OLE. Logged at startup so support logs show
// what hardware a report came from.
func SystemModel() (string, error) {
	ole.CoInitialize(0)
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return "", err
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return "", err
	}
	defer locator.Release()

	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, `\\.\root\cimv2`)
	if err != nil {
		return "", err
	}
	service := serviceRaw.ToIDispatch()
	defer service.Release()

	resultRaw, err := oleutil.CallMethod(service, "ExecQuery", "SELECT Manufacturer, Model FROM Win32_ComputerSystem")
	if err != nil {
		return "", err
	}
	result := resultRaw.ToIDispatch()
	defer result.Release()

	countVariant, err := oleutil.GetProperty(result, "Count")
	if err != nil {
		return "", err
	}
	if int(countVariant.Val) == 0 {
		return "", fmt.Errorf("no Win32_ComputerSystem instance found")
	}

	itemRaw, err := oleutil.CallMethod(result, "ItemIndex", 0)
	if err != nil {
		return "", err
	}
	item := itemRaw.ToIDispatch()
	defer item.Release()

	manufacturer, err := oleutil.GetProperty(item, "Manufacturer")
	if err != nil {
		return "", err
	}
	model, err := oleutil.GetProperty(item, "Model")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s", manufacturer.ToString(), model.ToString()), nil
}
