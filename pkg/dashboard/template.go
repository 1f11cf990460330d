package dashboard

import (
	"bytes"
	"html/template"
	"strings"

	"founderdesk/pkg/config"
	"founderdesk/pkg/roster"
)

// memberView decorates a team member with render-time flags.
type memberView struct {
	roster.TeamMember
	Editable bool
	Initial  string
}

type dashboardView struct {
	Startup  roster.Startup
	Members  []memberView
	Editable []memberView
	Token    string
}

// Render produces the complete dashboard document for one startup.
func Render(d Dashboard) ([]byte, error) {
	view := dashboardView{
		Startup: d.Startup,
		Token:   d.Token,
	}
	for _, m := range d.Members {
		editable := d.EditScope == config.EditScopeAny || (d.CurrentMemberID != "" && m.ID == d.CurrentMemberID)
		mv := memberView{TeamMember: m, Editable: editable, Initial: initial(m.Name)}
		view.Members = append(view.Members, mv)
		if editable {
			view.Editable = append(view.Editable, mv)
		}
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "M"
	}
	return strings.ToUpper(name[:1])
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Startup.Name}} - Dashboard</title>
    <link rel="stylesheet" href="/styles.css">
</head>
<body>
    <div class="container">
        <header class="header">
            <div class="header-content">
                <div class="logo">
                    <div class="logo-icon">&#128203;</div>
                    <h1>{{.Startup.Name}}</h1>
                </div>
                {{if .Editable}}
                <button class="update-profile-btn" onclick="showUpdateForms()">Update Profile</button>
                {{end}}
            </div>
            <p class="subtitle">Startup Dashboard</p>
        </header>

        <div class="dashboard-grid">
            <div class="card">
                <h2>Startup Information</h2>
                <div class="info-grid">
                    <div class="info-item">
                        <span class="label">Startup Name</span>
                        <span class="value">{{.Startup.Name}}</span>
                    </div>
                    <div class="info-item">
                        <span class="label">Primary Contact</span>
                        <span class="value">{{.Startup.PrimaryContact}}</span>
                    </div>
                    <div class="info-item">
                        <span class="label">Team Size</span>
                        <span class="value">{{len .Members}} members</span>
                    </div>
                </div>
            </div>

            <div class="card">
                <h2>Team Members</h2>
                <p class="subtitle">All members of your startup team</p>
                <div class="team-list">
                    {{range .Members}}
                    <div class="team-member" data-member-id="{{.ID}}">
                        <div class="member-avatar">{{.Initial}}</div>
                        <div class="member-info">
                            <div class="member-name">{{.Name}}</div>
                            <div class="member-details">
                                <span class="member-role">{{.Position}}</span>
                                <span class="member-contact">{{if .Mobile}}{{.Mobile}}{{else}}N/A{{end}}</span>
                                <span class="member-email">{{.Email}}</span>
                            </div>
                        </div>
                        <span class="member-status">{{if .Status}}{{.Status}}{{else}}Active{{end}}</span>
                    </div>
                    {{end}}
                </div>
            </div>

            {{if .Editable}}
            <div class="card profile-card">
                <h2>Update Profile</h2>
                <p class="subtitle">Changes are saved back to the roster</p>
                {{range .Editable}}
                <div class="member-profile-section" data-member-id="{{.ID}}">
                    <h3 class="profile-member-name">
                        <span class="member-avatar-small">{{.Initial}}</span>
                        {{.Name}}
                    </h3>
                    <form class="profile-form" data-member-id="{{.ID}}" data-member-name="{{.Name}}">
                        <div class="form-grid">
                            <div class="form-group">
                                <label>Personal Email</label>
                                <input type="email" name="Personal email*" value="{{.Email}}" required>
                            </div>
                            <div class="form-group">
                                <label>Mobile Number</label>
                                <input type="tel" name="Mobile*" value="{{.Mobile}}" required>
                            </div>
                            <div class="form-group full-width">
                                <label>Position at Startup</label>
                                <input type="text" name="Position at startup*" value="{{.Position}}" required>
                            </div>
                            <div class="form-group full-width">
                                <label>What is your association to UTS?</label>
                                <input type="text" name="What is your association to UTS?*" value="{{.UTSAssociation}}" required>
                            </div>
                        </div>
                        <button type="submit" class="submit-btn">Update {{.Name}}'s Profile</button>
                    </form>
                </div>
                {{end}}
            </div>
            {{end}}
        </div>
    </div>

    <script>
        const token = "{{.Token}}";

        document.addEventListener('DOMContentLoaded', function() {
            document.querySelectorAll('.profile-form').forEach(function(form) {
                form.addEventListener('submit', async function(e) {
                    e.preventDefault();

                    const updates = {};
                    for (const [key, value] of new FormData(form).entries()) {
                        updates[key] = value;
                    }

                    try {
                        const response = await fetch('/update-profile', {
                            method: 'POST',
                            headers: { 'Content-Type': 'application/json' },
                            body: JSON.stringify({
                                token: token,
                                memberId: form.dataset.memberId,
                                updates: updates
                            })
                        });
                        const result = await response.json();
                        if (result.success) {
                            alert(form.dataset.memberName + "'s profile has been updated.");
                        } else {
                            alert(result.message || 'Failed to update profile');
                        }
                    } catch (err) {
                        alert('Failed to update profile');
                    }
                });
            });
        });

        function showUpdateForms() {
            document.querySelector('.profile-card').scrollIntoView({ behavior: 'smooth' });
        }
    </script>
</body>
</html>
`))
