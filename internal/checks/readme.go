package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harrison/docguard/internal/markdown"
	"github.com/harrison/docguard/internal/models"
)

// Section titles the README is expected to contain.
const (
	TitlePrerequisites    = "Prerequisites"
	TitleGettingStarted   = "Getting Started"
	TitleInstall          = "2. Install Dependencies"
	TitleStartDatabase    = "3. Start the Database"
	TitleEnvironmentSetup = "4. Environment Setup"
	TitleMigration        = "5. Database Generation/Migration"
	TitleDevServer        = "6. Start the Development Server"
	TitleAvailableScripts = "Available Scripts"
	TitleDockerCommands   = "Docker Commands"
	TitleProjectStructure = "Project Structure"
	TitleTechnologiesUsed = "Technologies Used"
	TitleDevelopmentTips  = "Development Tips"
	TitleTroubleshooting  = "Troubleshooting"
)

// IdentificationMarker names the project the README documents.
const IdentificationMarker = "HabitRace Backend"

// RequiredEnvVars are the variables the environment setup step must declare.
var RequiredEnvVars = []string{
	"DATABASE_URL",
	"DB_NAME",
	"DB_USER",
	"DB_PASSWORD",
	"DB_PORT",
	"PORT",
	"SECRET_KEY",
	"NODE_ENV",
}

// MigrationCommands are accepted database generation/migration invocations.
var MigrationCommands = []string{
	"bun run db:generate",
	"bun run db:migrate",
	"bun run prisma:migrate",
}

// ScriptCommands are the scripts listed under Available Scripts.
var ScriptCommands = []string{"bun dev", "bun start", "bun test", "bun run build"}

// DockerCommands are the examples listed under Docker Commands.
var DockerCommands = []string{
	"docker-compose up -d",
	"docker-compose down",
	"docker-compose logs postgres",
	"docker-compose exec postgres psql -U",
}

// SweepTitles are the headings every README must carry. A numbered step
// prefix is accepted, so "3. Start the Database" satisfies
// "Start the Database".
var SweepTitles = []string{
	"Prerequisites",
	"Getting Started",
	"Start the Database",
	"Environment Setup",
	"Database Generation/Migration",
	"Start the Development Server",
	"Available Scripts",
	"Docker Commands",
	"Project Structure",
	"Technologies Used",
	"Development Tips",
	"Troubleshooting",
}

var (
	bunPrereqRegex  = regexp.MustCompile(`(?i)\bBun\b.*\(https://[^)]+\).*v?1\.2\.22.*or higher`)
	dockerRegex     = regexp.MustCompile(`(?i)Docker.*Compose`)
	gitRegex        = regexp.MustCompile(`\bGit\b`)
	cdBackendRegex  = regexp.MustCompile(`\bcd\s+backend\b`)
	composeUpRegex  = regexp.MustCompile(`docker-compose\s+up\s+-d`)
	cpEnvRegex      = regexp.MustCompile(`\bcp\s+\.env\.example\s+\.env\b`)
	bunDevRegex     = regexp.MustCompile(`\bbun\s+dev\b`)
	bunVersionRegex = regexp.MustCompile(`(?i)bun v?1\.2\.22`)
	httpLinkRegex   = regexp.MustCompile(`^https?://`)
	bunHostRegex    = regexp.MustCompile(`^https://[A-Za-z0-9.\-]+(?:/.*)?$`)
)

func envDeclRegex(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `[ \t]*=`)
}

// Standard returns the README checklist in reporting order.
func Standard() []Check {
	checks := []Check{
		identification(),
		prerequisites(),
		gettingStarted(),
		installDependencies(),
		startDatabase(),
		environmentSetup(),
		databaseMigration(),
		devServer(),
		availableScripts(),
		dockerCommands(),
		projectStructure(),
		technologiesUsed(),
		developmentTips(),
		troubleshooting(),
		bunVersionLink(),
		spelling(),
		codeBlockLanguages(),
	}
	for _, title := range SweepTitles {
		checks = append(checks, headingPresent(title))
	}
	return checks
}

func identification() Check {
	return documentCheck("identification", "README is the HabitRace Backend markdown document",
		func(doc *models.Document, e *expectation) {
			e.require(strings.Contains(doc.Text, IdentificationMarker),
				"README should contain 'HabitRace Backend'.", IdentificationMarker)
			switch doc.Ext() {
			case ".md", "", ".markdown":
			default:
				e.require(false, fmt.Sprintf("README should be markdown/plain, got: %s", doc.Path))
			}
		})
}

func prerequisites() Check {
	return sectionCheck("prerequisites", TitlePrerequisites, "required tools are listed",
		func(body string, e *expectation) {
			e.require(bunPrereqRegex.MatchString(body),
				"Bun prerequisite should mention https URL and v1.2.22 or higher.", "Bun v1.2.22 or higher")
			e.require(dockerRegex.MatchString(body),
				"Docker and Docker Compose should be listed.", "Docker Compose")
			e.require(gitRegex.MatchString(body), "Git should be listed.", "Git")
		})
}

func gettingStarted() Check {
	return sectionCheck("getting-started", TitleGettingStarted, "clone and cd backend commands",
		func(body string, e *expectation) {
			found := false
			for _, b := range markdown.CodeBlocks(body) {
				if (b.Language == "bash" || b.Language == "sh") &&
					strings.Contains(b.Body, "git clone") && cdBackendRegex.MatchString(b.Body) {
					found = true
					break
				}
			}
			e.require(found,
				"Getting Started should include a bash code block cloning the repo and 'cd backend'.",
				"git clone", "cd backend")
		})
}

func installDependencies() Check {
	return sectionCheck("install-dependencies", TitleInstall, "dependencies installed with bun",
		func(body string, e *expectation) {
			e.require(strings.Contains(body, "bun install"),
				"Install step should use 'bun install'.", "bun install")
		})
}

func startDatabase() Check {
	return sectionCheck("start-database", TitleStartDatabase, "database started with docker-compose",
		func(body string, e *expectation) {
			e.require(composeUpRegex.MatchString(body),
				"Should use 'docker-compose up -d'.", "docker-compose up -d")
			e.require(strings.Contains(body, "localhost:5432"),
				"Should mention database available on localhost:5432.", "localhost:5432")
		})
}

func environmentSetup() Check {
	return sectionCheck("environment-setup", TitleEnvironmentSetup, "env file copied and variables declared",
		func(body string, e *expectation) {
			e.require(cpEnvRegex.MatchString(body),
				"Should include 'cp .env.example .env'.", "cp .env.example .env")

			var missing []string
			for _, key := range RequiredEnvVars {
				if !envDeclRegex(key).MatchString(body) {
					missing = append(missing, key)
				}
			}
			e.require(len(missing) == 0,
				"Missing env vars: "+strings.Join(missing, ", ")+".", missing...)
		})
}

func databaseMigration() Check {
	return sectionCheck("database-migration", TitleMigration, "migration commands documented",
		func(body string, e *expectation) {
			ok := len(missingFrom(body, MigrationCommands...)) < len(MigrationCommands)
			e.require(ok,
				"DB migration section should include bun run db:generate/db:migrate or prisma:migrate.",
				MigrationCommands...)
		})
}

func devServer() Check {
	return Check{
		Name:        "dev-server",
		Description: "dev server command and port",
		Run: func(doc *models.Document) models.CheckResult {
			sec, ok := markdown.ExtractSection(doc.Text, TitleDevServer)
			if !ok {
				return models.SectionMissing("dev-server", TitleDevServer)
			}
			e := &expectation{}
			e.require(bunDevRegex.MatchString(sec.Body),
				"Development section should include 'bun dev'.", "bun dev")
			e.require(strings.Contains(doc.Text, "http://localhost:3001"),
				"Should mention server starts on http://localhost:3001.", "http://localhost:3001")
			res := e.result("dev-server")
			res.Line = sec.Line
			return res
		},
	}
}

func availableScripts() Check {
	return sectionCheck("available-scripts", TitleAvailableScripts, "bun scripts listed",
		func(body string, e *expectation) {
			missing := missingFrom(body, ScriptCommands...)
			e.require(len(missing) == 0,
				"Scripts section should list "+quoteAll(missing)+".", missing...)
		})
}

func dockerCommands() Check {
	return sectionCheck("docker-commands", TitleDockerCommands, "docker-compose examples present",
		func(body string, e *expectation) {
			for _, cmd := range DockerCommands {
				fields := strings.Fields(cmd)
				e.require(strings.Contains(body, fields[0]) && strings.Contains(body, fields[1]),
					fmt.Sprintf("Missing docker command example '%s'.", cmd), cmd)
			}
		})
}

func projectStructure() Check {
	return sectionCheck("project-structure", TitleProjectStructure, "backend layout shown",
		func(body string, e *expectation) {
			missing := missingFrom(body, "backend/", "src/", "docker-compose.yml")
			e.require(len(missing) == 0,
				"Structure should show backend layout, missing "+quoteAll(missing)+".", missing...)
		})
}

func technologiesUsed() Check {
	return sectionCheck("technologies-used", TitleTechnologiesUsed, "stack technologies listed",
		func(body string, e *expectation) {
			for _, kw := range []string{"Bun", "PostgreSQL", "Prisma", "Express"} {
				e.require(containsFold(body, kw), "Technologies should include "+kw+".", kw)
			}
		})
}

func developmentTips() Check {
	return sectionCheck("development-tips", TitleDevelopmentTips, "hot reload, db GUI and env security tips",
		func(body string, e *expectation) {
			e.require(containsFold(body, "Hot Reload"), "Tips should mention Hot Reload.", "Hot Reload")
			e.require(containsFold(body, "pgAdmin") || containsFold(body, "DBeaver"),
				"Tips should mention pgAdmin or DBeaver.", "pgAdmin|DBeaver")
			e.require(strings.Contains(body, "Never commit your `.env`"),
				"Tips should warn 'Never commit your `.env`'.", "Never commit your `.env`")
		})
}

func troubleshooting() Check {
	return sectionCheck("troubleshooting", TitleTroubleshooting, "docker health, ports and dependency fixes",
		func(body string, e *expectation) {
			missing := missingFrom(body, "docker ps", "docker-compose ps")
			e.require(len(missing) == 0, "Troubleshooting should include docker checks.", missing...)
			e.require(strings.Contains(body, "Port Conflicts"),
				"Troubleshooting should cover Port Conflicts.", "Port Conflicts")
			e.require(strings.Contains(body, "Dependencies Issues") || strings.Contains(body, "Dependency Issues"),
				"Troubleshooting should cover Dependencies Issues.", "Dependencies Issues")
			missing = missingFrom(body, "bun pm cache rm", "bun install")
			e.require(len(missing) == 0,
				"Troubleshooting should show "+quoteAll(missing)+".", missing...)
		})
}

func bunVersionLink() Check {
	return documentCheck("bun-version-link", "Bun version note and https link",
		func(doc *models.Document, e *expectation) {
			e.require(bunVersionRegex.MatchString(doc.Text),
				"README should mention bun v1.2.22.", "bun v1.2.22")

			var urls []string
			for _, l := range markdown.Links(doc.Text) {
				if l.Label == "Bun" && httpLinkRegex.MatchString(l.Destination) {
					urls = append(urls, l.Destination)
				}
			}
			e.require(len(urls) > 0, "A Bun hyperlink should be present.", "[Bun](https://...)")
			for _, url := range urls {
				if !strings.HasPrefix(url, "https://") {
					e.require(false, fmt.Sprintf("Bun link should be https: %s", url))
					continue
				}
				e.require(bunHostRegex.MatchString(url), fmt.Sprintf("Suspicious Bun URL: %s", url))
			}
		})
}

func spelling() Check {
	return documentCheck("spelling", "common misspellings absent",
		func(doc *models.Document, e *expectation) {
			e.require(!strings.Contains(strings.ToLower(doc.Text), "enviournment"),
				"Typo detected: 'enviournment' should be 'environment'.")
		})
}

func codeBlockLanguages() Check {
	return documentCheck("code-block-languages", "fenced blocks carry languages",
		func(doc *models.Document, e *expectation) {
			langs := markdown.Languages(doc.Text)
			e.require(langs["bash"] || langs["sh"], "Expect bash/sh code blocks for commands.", "bash")
			e.require(langs["env"], "Expect env code block for environment variables.", "env")
		})
}

func headingPresent(title string) Check {
	name := "heading:" + title
	return documentCheck(name, "section heading exists",
		func(doc *models.Document, e *expectation) {
			e.require(markdown.HasStepHeading(doc.Text, title), "Missing section: "+title+".", title)
		})
}
