package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmoraes/tarefas/task"
	"github.com/spf13/cobra"
)

var criarCmd = &cobra.Command{
	Use:   "criar <título>",
	Short: "Cria uma nova tarefa",
	Args:  cobra.ExactArgs(1),
	RunE:  runCriar,
}

var (
	criarDescricao  string
	criarPrioridade string
	criarOrigem     string
)

var proximaCmd = &cobra.Command{
	Use:   "proxima",
	Short: "Seleciona a próxima tarefa pendente mais urgente e a marca como Fazendo",
	Args:  cobra.NoArgs,
	RunE:  runProxima,
}

var prioridadeCmd = &cobra.Command{
	Use:   "prioridade <id> <prioridade>",
	Short: "Altera a prioridade de uma tarefa",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrioridade,
}

var concluirCmd = &cobra.Command{
	Use:   "concluir <id>",
	Short: "Marca uma tarefa como Concluída",
	Args:  cobra.ExactArgs(1),
	RunE:  runConcluir,
}

var arquivarCmd = &cobra.Command{
	Use:   "arquivar",
	Short: "Arquiva tarefas concluídas além da janela de retenção",
	Args:  cobra.NoArgs,
	RunE:  runArquivar,
}

var excluirCmd = &cobra.Command{
	Use:   "excluir <id>",
	Short: "Exclui uma tarefa logicamente (o registro permanece)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExcluir,
}

var listarCmd = &cobra.Command{
	Use:   "listar",
	Short: "Lista as tarefas ativas",
	Args:  cobra.NoArgs,
	RunE:  runListar,
}

var (
	listarStatus   string
	listarJSON     bool
	listarDetalhes bool
)

var arquivadasCmd = &cobra.Command{
	Use:   "arquivadas",
	Short: "Lista as tarefas arquivadas (exclui as logicamente excluídas)",
	Args:  cobra.NoArgs,
	RunE:  runArquivadas,
}

var (
	arquivadasTodas bool
	arquivadasJSON  bool
)

var compactarCmd = &cobra.Command{
	Use:   "compactar",
	Short: "Remove do arquivo as tarefas excluídas logicamente",
	Args:  cobra.NoArgs,
	RunE:  runCompactar,
}

func init() {
	rootCmd.AddCommand(criarCmd, proximaCmd, prioridadeCmd, concluirCmd,
		arquivarCmd, excluirCmd, listarCmd, arquivadasCmd, compactarCmd)

	criarCmd.Flags().StringVarP(&criarDescricao, "descricao", "d", "", "Descrição da tarefa")
	criarCmd.Flags().StringVarP(&criarPrioridade, "prioridade", "p", "", "Prioridade (Urgente, Alta, Média, Baixa)")
	criarCmd.Flags().StringVarP(&criarOrigem, "origem", "o", "", "Origem (E-mail, Telefone, Chamado do Sistema)")
	criarCmd.MarkFlagRequired("prioridade")
	criarCmd.MarkFlagRequired("origem")

	listarCmd.Flags().StringVar(&listarStatus, "status", "", "Filtra por status")
	listarCmd.Flags().BoolVar(&listarJSON, "json", false, "Saída em JSON")
	listarCmd.Flags().BoolVar(&listarDetalhes, "detalhes", false, "Mostra os detalhes completos")

	arquivadasCmd.Flags().BoolVar(&arquivadasTodas, "todas", false, "Inclui registros excluídos logicamente")
	arquivadasCmd.Flags().BoolVar(&arquivadasJSON, "json", false, "Saída em JSON")

	addFlagAliases(criarCmd)
}

func parseIDArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("ID inválido: %q", arg)
	}
	return id, nil
}

func runCriar(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	priority, err := task.NormalizePriority(criarPrioridade)
	if err != nil {
		return err
	}
	origin, err := task.NormalizeOrigin(criarOrigem)
	if err != nil {
		return err
	}

	created, err := store.Create(args[0], task.CreateOptions{
		Description: criarDescricao,
		Priority:    priority,
		Origin:      origin,
	})
	if err != nil {
		return err
	}

	if err := store.Save(env.files); err != nil {
		return err
	}

	fmt.Printf("Tarefa criada com sucesso. ID = %d\n", created.ID)
	return nil
}

func runProxima(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	selected, err := store.SelectNextUrgent()
	if errors.Is(err, task.ErrNoPendingTasks) {
		fmt.Println("Não há tarefas pendentes.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := store.Save(env.files); err != nil {
		return err
	}

	printTaskDetail(os.Stdout, *selected)
	return nil
}

func runPrioridade(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}
	priority, err := task.NormalizePriority(args[1])
	if err != nil {
		return err
	}

	updated, err := store.SetPriority(id, priority)
	if err != nil {
		return err
	}

	if err := store.Save(env.files); err != nil {
		return err
	}

	fmt.Printf("Prioridade da tarefa %d alterada para %s.\n", updated.ID, updated.Priority)
	return nil
}

func runConcluir(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	completed, err := store.Complete(id)
	if errors.Is(err, task.ErrAlreadyCompleted) {
		fmt.Println("Tarefa já está concluída.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := store.Save(env.files); err != nil {
		return err
	}

	fmt.Printf("Tarefa %d concluída em %s.\n", completed.ID, *completed.CompletedAt)
	return nil
}

func runArquivar(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	moved := store.ArchiveAged(time.Now(), env.cfg.Retention())
	if moved == 0 {
		fmt.Println("Nenhuma tarefa concluída antiga para arquivar.")
		return nil
	}

	if err := store.Save(env.files); err != nil {
		return err
	}

	fmt.Printf("%d tarefa(s) arquivada(s).\n", moved)
	return nil
}

func runExcluir(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	id, err := parseIDArg(args[0])
	if err != nil {
		return err
	}

	deleted, err := store.Delete(id)
	if err != nil {
		return err
	}

	if err := store.Save(env.files); err != nil {
		return err
	}

	fmt.Printf("Tarefa %d marcada como Excluída (exclusão lógica).\n", deleted.ID)
	return nil
}

func runListar(cmd *cobra.Command, args []string) error {
	_, store, err := loadStore()
	if err != nil {
		return err
	}

	tasks := store.Active()
	if listarStatus != "" {
		status, err := task.NormalizeStatus(listarStatus)
		if err != nil {
			return err
		}
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	return printTaskList(tasks, listarJSON, listarDetalhes, "Nenhuma tarefa ativa registrada.")
}

func runArquivadas(cmd *cobra.Command, args []string) error {
	_, store, err := loadStore()
	if err != nil {
		return err
	}

	tasks := store.ArchivedReport()
	if arquivadasTodas {
		tasks = store.Archived()
	}

	return printTaskList(tasks, arquivadasJSON, false, "Nenhuma tarefa arquivada (ou somente tarefas excluídas).")
}

func runCompactar(cmd *cobra.Command, args []string) error {
	env, store, err := loadStore()
	if err != nil {
		return err
	}

	removed := store.CompactArchive()
	if removed == 0 {
		fmt.Println("Nada a compactar.")
		return nil
	}

	if err := store.Save(env.files); err != nil {
		return err
	}

	fmt.Printf("%d registro(s) removido(s) do arquivo.\n", removed)
	return nil
}

func printTaskList(tasks []task.Task, asJSON, detailed bool, emptyMessage string) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if tasks == nil {
			tasks = []task.Task{}
		}
		return encoder.Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println(emptyMessage)
		return nil
	}

	if detailed {
		for _, t := range tasks {
			printTaskDetail(os.Stdout, t)
		}
		return nil
	}

	printTaskTable(os.Stdout, tasks)
	return nil
}
