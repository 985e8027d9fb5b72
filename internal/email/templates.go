package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const accountVerificationTemplate = `<html>
<body>
  <p>Hi {{.FirstName}} {{.LastName}},</p>
  <p>Welcome to Expense Tracker! Your account <b>{{.Username}}</b> has been created.</p>
  <p>Please verify your account within 30 minutes by clicking the link below:</p>
  <p><a href="{{.FullURL}}">Verify my account</a></p>
  <p>If you did not sign up, you can ignore this email.</p>
</body>
</html>`

const resendTokenVerificationTemplate = `<html>
<body>
  <p>Hi {{.FirstName}} {{.LastName}},</p>
  <p>Your previous verification token for <b>{{.Username}}</b> has expired, so we issued a new one.</p>
  <p>Please verify your account within 30 minutes by clicking the link below:</p>
  <p><a href="{{.FullURL}}">Verify my account</a></p>
</body>
</html>`

const forgotPasswordTemplate = `<html>
<body>
  <p>Hi {{.FirstName}} {{.LastName}},</p>
  <p>We received a request to reset the password for <b>{{.Username}}</b>.</p>
  <p>The link below is valid for 30 minutes:</p>
  <p><a href="{{.FullURL}}">Reset my password</a></p>
  <p>If you did not request this, you can ignore this email.</p>
</body>
</html>`

// TemplateManager holds the parsed lifecycle templates. The embedded defaults
// are always available; LoadTemplates can replace them with .html files from a
// configured directory.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the default templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	defaults := map[string]string{
		TemplateAccountVerification:     accountVerificationTemplate,
		TemplateResendTokenVerification: resendTokenVerificationTemplate,
		TemplateForgotPassword:          forgotPasswordTemplate,
	}
	for name, src := range defaults {
		if err := tm.AddTemplate(name, src); err != nil {
			return nil, err
		}
	}

	return tm, nil
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[name]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

// AddTemplate parses and registers a template under name.
func (tm *TemplateManager) AddTemplate(name, src string) error {
	tpl, err := template.New(name).Parse(src)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// LoadTemplates walks dirPath and registers every .html file under its
// basename (without extension), overriding the embedded defaults.
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ".html")
		return tm.AddTemplate(name, string(content))
	})
}
