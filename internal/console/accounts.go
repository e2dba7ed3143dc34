package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/service"
)

func (c *Console) accounts(args []string) {
	if len(args) == 0 {
		c.printf("Gunakan: user list|add|edit|delete\n")
		return
	}

	var err error
	switch args[0] {
	case "list":
		err = c.listAccounts()
	case "add":
		err = c.addAccount()
	case "edit":
		err = c.editAccount(args[1:])
	case "delete":
		err = c.deleteAccount(args[1:])
	default:
		c.printf("Perintah user tidak dikenal: %s\n", args[0])
		return
	}

	if err != nil {
		c.printError(err)
	}
}

func (c *Console) listAccounts() error {
	accounts, err := c.service.ListAccounts(c.session)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAMA\tUSERNAME\tROLE")
	for _, account := range accounts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", account.ID, account.Name, account.Username, account.Role)
	}
	return w.Flush()
}

func (c *Console) addAccount() error {
	var input service.AccountInput
	var err error

	if input.Name, err = c.ask("Nama: "); err != nil {
		return err
	}
	if input.Username, err = c.ask("Username: "); err != nil {
		return err
	}
	if input.Password, err = c.askPassword("Password: "); err != nil {
		return err
	}
	if input.PasswordConfirm, err = c.askPassword("Konfirmasi password: "); err != nil {
		return err
	}
	role, err := c.askDefault("Role (admin/petugas)", string(domain.RoleStaff))
	if err != nil {
		return err
	}
	input.Role = domain.Role(role)

	account, err := c.service.CreateAccount(c.session, input)
	if err != nil {
		return err
	}

	c.printf("Pengguna %s berhasil ditambahkan dengan id %d.\n", account.Username, account.ID)
	return nil
}

func (c *Console) editAccount(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	account, err := c.service.GetAccount(c.session, id)
	if err != nil {
		return err
	}

	input := service.AccountUpdateInput{}
	if input.Name, err = c.askDefault("Nama", account.Name); err != nil {
		return err
	}
	if input.Username, err = c.askDefault("Username", account.Username); err != nil {
		return err
	}
	role, err := c.askDefault("Role (admin/petugas)", string(account.Role))
	if err != nil {
		return err
	}
	input.Role = domain.Role(role)

	password, err := c.askPassword("Password baru (kosongkan jika tidak diubah): ")
	if err != nil {
		return err
	}
	if password != "" {
		input.Password = &password
		if input.PasswordConfirm, err = c.askPassword("Konfirmasi password: "); err != nil {
			return err
		}
	}

	if _, err := c.service.UpdateAccount(c.session, id, input); err != nil {
		return err
	}

	c.printf("Pengguna berhasil diubah.\n")
	return nil
}

func (c *Console) deleteAccount(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if id == c.session.Account.ID {
		return domain.ErrSelfDeletion
	}

	if !c.confirm() {
		c.printf("Dibatalkan.\n")
		return nil
	}

	if err := c.service.DeleteAccount(c.session, id); err != nil {
		return err
	}

	c.printf("Pengguna berhasil dihapus.\n")
	return nil
}
