package platform

import (
	"fmt"
	"strings"
)

func psQuote(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

// toastScript builds the PowerShell program that loads a toast XML
// document and submits it through the WinRT notification manager under
// the registered AUMID. powershell.exe -Command takes a single command
// string and joins any further arguments into it, so the values are
// embedded as single-quoted literals, which PowerShell never
// interpolates.
func toastScript(xml, appID, expire string) string {
	script := fmt.Sprintf(
		`[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null; `+
			`[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null; `+
			`$doc = [Windows.Data.Xml.Dom.XmlDocument]::new(); `+
			`$doc.LoadXml(%s); `+
			`$toast = [Windows.UI.Notifications.ToastNotification]::new($doc); `,
		psQuote(xml))
	if expire != "" {
		script += fmt.Sprintf(`$toast.ExpirationTime = [DateTimeOffset]::Parse(%s); `, psQuote(expire))
	}
	script += fmt.Sprintf(`[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast);`, psQuote(appID))
	return script
}
