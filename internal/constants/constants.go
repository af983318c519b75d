package constants

const (
	Version        = `0.1.0`
	AppName        = `Stark Notes`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.stark-notes/`
	EnvPrefix      = `STARK`
	EnvFile        = `.env`
	LogFile        = `stark.log`
	DatabaseFile   = `stark.db`

	NotesSlot   = `stark-notes`
	FoldersSlot = `stark-folders`

	UntitledNote = `Untitled Note`
)
