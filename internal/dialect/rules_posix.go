package dialect

import (
	"fmt"
	"strings"
)

// posixToWindows maps POSIX verbs onto cmd.exe and PowerShell equivalents.
// Rules that synthesize target flags strip the source flags they consumed
// and keep the operands; everything else carries the remainder verbatim.
// Keys are matched against the lowercased verb.
var posixToWindows = map[string]rewriteFunc{
	"pwd":      bare("cd"),
	"ls":       rewriteLs,
	"mkdir":    verbFor("mkdir"),
	"rmdir":    verbFor("rmdir"),
	"rm":       rewriteRm,
	"touch":    rewriteTouch,
	"cp":       verbFor("copy"),
	"mv":       verbFor("move"),
	"cat":      verbFor("type"),
	"less":     verbFor("more"),
	"more":     verbFor("more"),
	"head":     rewriteHead,
	"tail":     rewriteTail,
	"chmod":    noteFor("chmod not supported on Windows; use icacls or powershell Set-Acl"),
	"chown":    noteFor("chown not supported on Windows; use icacls"),
	"whoami":   bare("whoami"),
	"uname":    verbFor("systeminfo"),
	"hostname": bare("hostname"),
	"date":     bare("date /t"),
	"uptime":   bare("net statistics workstation"),
	"df":       bare("wmic logicaldisk get caption,freespace,size"),
	"du":       rewriteDu,
	"free":     bare(`systeminfo | findstr /C:"Total Physical Memory" /C:"Available"`),
	"top":      bare("tasklist"),
	"htop":     bare("tasklist"),
	"ps":       rewritePs,
	"kill":     rewriteKill,
	"jobs":     noteFor("job control not supported on Windows; use powershell background jobs or task manager"),
	"fg":       noteFor("job control not supported on Windows; use powershell background jobs or task manager"),
	"bg":       noteFor("job control not supported on Windows; use powershell background jobs or task manager"),
	"ping":     verbFor("ping"),
	"curl":     verbFor("curl"),
	"wget":     verbFor("curl -O"),
	"ifconfig": bare("ipconfig /all"),
	"ip":       rewriteIP,
	"netstat":  verbFor("netstat -ano"),
	"ssh":      verbFor("ssh"),
	"scp":      verbFor("scp"),
	"apt":      noteFor("Package manager commands are not supported on Windows; consider using WSL or equivalent"),
	"dnf":      noteFor("Package manager commands are not supported on Windows; consider using WSL or equivalent"),
	"pacman":   noteFor("Package manager commands are not supported on Windows; consider using WSL or equivalent"),
	"adduser":  noteFor("User management must be done via Control Panel or net user on Windows"),
	"passwd":   noteFor("User management must be done via Control Panel or net user on Windows"),
	"su":       noteFor("User management must be done via Control Panel or net user on Windows"),
	"who":      verbFor("whoami"),
	"id":       verbFor("whoami"),
	"groups":   verbFor("whoami"),
	"tar":      verbFor("tar"),
	"zip":      rewriteZip,
	"unzip":    rewriteUnzip,
	"history":  bare(Note("history shown by this terminal")),
	"clear":    bare("cls"),
}

// psCommand wraps a PowerShell pipeline the way cmd.exe expects it quoted.
func psCommand(inner string) string {
	return `powershell -Command "` + inner + `"`
}

func rewriteLs(rest string) string {
	flags := shortFlags(rest)
	operands := withoutShortFlags(rest, "lah")
	head := "dir"
	switch {
	case strings.ContainsRune(flags, 'l') && strings.ContainsRune(flags, 'a'):
		head = "dir /a /q"
	case strings.ContainsRune(flags, 'a'):
		head = "dir /a"
	}
	return withRest(head, operands)
}

func rewriteRm(rest string) string {
	if strings.ContainsRune(shortFlags(rest), 'r') {
		return withRest("rmdir /s /q", withoutShortFlags(rest, "rf"))
	}
	return withRest("del", rest)
}

func rewriteTouch(rest string) string {
	if rest == "" {
		return Note("touch: missing filename")
	}
	return "type nul > " + rest
}

func rewriteHead(rest string) string {
	if n, remainder, ok := takeCountFlag(rest, "-n"); ok {
		if file := lastField(remainder); file != "" {
			return psCommand(fmt.Sprintf("Get-Content %s -TotalCount %d", file, n))
		}
		return "more"
	}
	if rest != "" {
		return psCommand(fmt.Sprintf("Get-Content %s -TotalCount 10", rest))
	}
	return "more"
}

func rewriteTail(rest string) string {
	flags := shortFlags(rest)
	if strings.ContainsRune(flags, 'f') || strings.ContainsRune(flags, 'F') {
		file := withoutShortFlags(rest, "fF")
		return psCommand(withRest("Get-Content", file) + " -Wait")
	}
	if n, remainder, ok := takeCountFlag(rest, "-n"); ok {
		if file := lastField(remainder); file != "" {
			return psCommand(fmt.Sprintf("Get-Content %s -Tail %d", file, n))
		}
	}
	return psCommand(withRest("Get-Content", rest) + " -Tail 10")
}

func rewriteDu(rest string) string {
	if rest == "" {
		return Note("du needs directory")
	}
	return psCommand(fmt.Sprintf("(Get-ChildItem -Recurse %s | Measure-Object -Property Length -Sum).Sum", rest))
}

func rewritePs(rest string) string {
	if strings.Contains(rest, "aux") {
		return "tasklist"
	}
	return withRest("tasklist", rest)
}

func rewriteKill(rest string) string {
	if strings.ContainsRune(shortFlags(rest), '9') {
		return withRest("taskkill /PID", withoutShortFlags(rest, "9")) + " /F"
	}
	return withRest("taskkill /PID", rest)
}

// rewriteIP only understands address listing; other ip subcommands fall
// back.
func rewriteIP(rest string) string {
	if strings.Contains(rest, "addr") {
		return "ipconfig /all"
	}
	return ""
}

func rewriteZip(rest string) string {
	return psCommand(withRest("Compress-Archive -Path", rest))
}

func rewriteUnzip(rest string) string {
	return psCommand(withRest("Expand-Archive -Path", rest))
}
