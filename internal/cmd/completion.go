package cmd

import (
	"fmt"

	"github.com/philipparndt/go4dof/internal/ui"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish"`
}

func (c *CompletionCmd) Run() error {
	switch c.Shell {
	case "bash":
		ui.PrintRaw(bashCompletion)
	case "zsh":
		ui.PrintRaw(zshCompletion)
	case "fish":
		ui.PrintRaw(fishCompletion)
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", c.Shell)
	}
	return nil
}

const bashCompletion = `# bash completion for go4dof

_go4dof_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
        -c|--config)
            COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            return 0
            ;;
        --elbow)
            COMPREPLY=( $(compgen -W "up down" -- ${cur}) )
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            return 0
            ;;
    esac

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="fk ik wrist run workspace inspect example completion version -c --config --radians --debug"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    if [[ ${cur} == -* ]]; then
        case "${COMP_WORDS[1]}" in
            fk)        opts="--frames" ;;
            ik)        opts="--pose --matrix --roll --elbow --check" ;;
            wrist)     opts="--pose" ;;
            run)       opts="--elbow" ;;
            workspace) opts="--steps" ;;
            example)   opts="--plain" ;;
            *)         opts="" ;;
        esac
        COMPREPLY=( $(compgen -W "${opts} -c --config --radians --debug -h --help" -- ${cur}) )
    fi
    return 0
}

complete -F _go4dof_completions go4dof
`

const zshCompletion = `#compdef go4dof

_go4dof() {
    local -a commands
    commands=(
        'fk:Forward kinematics: tool pose for joint angles'
        'ik:Inverse kinematics: joint angles for a tool pose'
        'wrist:Show the wrist center of a tool pose'
        'run:Evaluate every target in the robot file'
        'workspace:Sample the reachable wrist-center envelope'
        'inspect:Show the robot geometry and its zero pose'
        'example:Print an annotated example robot file'
        'completion:Generate shell completion script'
        'version:Show version information'
    )

    local -a global_opts
    global_opts=(
        '(-c --config)'{-c,--config}'[Robot file]:robot file:_files -g "*.{yaml,yml}"'
        '--radians[Angles in radians]'
        '--debug[Log solver inputs and results]'
        '(-h --help)'{-h,--help}'[Show help]'
    )

    _arguments -C \
        $global_opts \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                fk)
                    _arguments $global_opts '--frames[Print every intermediate frame]' '*:joint angle:'
                    ;;
                ik)
                    _arguments $global_opts '--pose=[Tool pose x,y,z,alpha,beta,gamma]:pose:' \
                        '--matrix=[Tool transform r11..r33 tx ty tz]:matrix:' '--roll[Wrist roll with --matrix]:roll:' \
                        '--elbow[Elbow branch]:branch:(up down)' '--check[Verify with forward kinematics]'
                    ;;
                wrist)
                    _arguments $global_opts '--pose=[Tool pose x,y,z,alpha,beta,gamma]:pose:'
                    ;;
                run)
                    _arguments $global_opts '--elbow[Elbow branch]:branch:(up down)'
                    ;;
                workspace)
                    _arguments $global_opts '--steps[Samples per full joint turn]:steps:'
                    ;;
                example)
                    _arguments '--plain[Print without syntax highlighting]'
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
                *)
                    _arguments $global_opts
                    ;;
            esac
            ;;
    esac
}

_go4dof
`

const fishCompletion = `# fish completion for go4dof

# Main commands
complete -c go4dof -f -n "__fish_use_subcommand" -a "fk" -d "Forward kinematics: tool pose for joint angles"
complete -c go4dof -f -n "__fish_use_subcommand" -a "ik" -d "Inverse kinematics: joint angles for a tool pose"
complete -c go4dof -f -n "__fish_use_subcommand" -a "wrist" -d "Show the wrist center of a tool pose"
complete -c go4dof -f -n "__fish_use_subcommand" -a "run" -d "Evaluate every target in the robot file"
complete -c go4dof -f -n "__fish_use_subcommand" -a "workspace" -d "Sample the reachable wrist-center envelope"
complete -c go4dof -f -n "__fish_use_subcommand" -a "inspect" -d "Show the robot geometry and its zero pose"
complete -c go4dof -f -n "__fish_use_subcommand" -a "example" -d "Print an annotated example robot file"
complete -c go4dof -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"
complete -c go4dof -f -n "__fish_use_subcommand" -a "version" -d "Show version information"

# Global options
complete -c go4dof -s c -l config -d "Robot file" -r -a "(__fish_complete_suffix .yaml)"
complete -c go4dof -f -l radians -d "Angles in radians"
complete -c go4dof -f -l debug -d "Log solver inputs and results"

# Command options
complete -c go4dof -f -n "__fish_seen_subcommand_from fk" -l frames -d "Print every intermediate frame"
complete -c go4dof -f -n "__fish_seen_subcommand_from ik wrist" -l pose -d "Tool pose x,y,z,alpha,beta,gamma" -r
complete -c go4dof -f -n "__fish_seen_subcommand_from ik run" -l elbow -d "Elbow branch" -r -a "up down"
complete -c go4dof -f -n "__fish_seen_subcommand_from ik" -l matrix -d "Tool transform r11..r33 tx ty tz" -r
complete -c go4dof -f -n "__fish_seen_subcommand_from ik" -l roll -d "Wrist roll with --matrix" -r
complete -c go4dof -f -n "__fish_seen_subcommand_from ik" -l check -d "Verify with forward kinematics"
complete -c go4dof -f -n "__fish_seen_subcommand_from workspace" -l steps -d "Samples per full joint turn" -r
complete -c go4dof -f -n "__fish_seen_subcommand_from example" -l plain -d "Print without syntax highlighting"
complete -c go4dof -f -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`

func (c *CompletionCmd) Help() string {
	return `
Generate shell completion scripts for go4dof.

Examples:
  # Bash
  go4dof completion bash > ~/.local/share/bash-completion/completions/go4dof

  # Zsh
  go4dof completion zsh > ~/.zsh/completion/_go4dof

  # Fish
  go4dof completion fish > ~/.config/fish/completions/go4dof.fish
`
}
